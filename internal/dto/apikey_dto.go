package dto

import (
	"time"

	"github.com/google/uuid"
)

type IssueAPIKeyRequest struct {
	UserId string `json:"user_id" validate:"required"`
	Name   string `json:"name" validate:"required,max=100"`
	Admin  bool   `json:"admin"`
}

// IssueAPIKeyResponse is the only place the plain key ever appears.
type IssueAPIKeyResponse struct {
	Id        uuid.UUID `json:"id"`
	UserId    string    `json:"user_id"`
	Name      string    `json:"name"`
	KeyPrefix string    `json:"key_prefix"`
	APIKey    string    `json:"api_key"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

type APIKeyResponse struct {
	Id         uuid.UUID  `json:"id"`
	UserId     string     `json:"user_id"`
	Name       string     `json:"name"`
	KeyPrefix  string     `json:"key_prefix"`
	Admin      bool       `json:"admin"`
	Revoked    bool       `json:"revoked"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
