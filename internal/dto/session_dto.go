package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	ChatId   uuid.UUID              `json:"chat_id" validate:"required"`
	UserId   string                 `json:"user_id" validate:"required"`
	DeviceId string                 `json:"device_id" validate:"required"`
	Ip       string                 `json:"ip" validate:"required,ip"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateSessionRequest struct {
	Status   *string                `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type ListSessionsQuery struct {
	UserId string `query:"user_id"`
	ChatId string `query:"chat_id"`
	Status string `query:"status"`
	From   string `query:"from"`
	To     string `query:"to"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type SessionResponse struct {
	Id        uuid.UUID              `json:"id"`
	ChatId    uuid.UUID              `json:"chat_id"`
	UserId    string                 `json:"user_id"`
	Timestamp time.Time              `json:"timestamp"`
	DeviceId  string                 `json:"device_id"`
	Ip        string                 `json:"ip"`
	Status    string                 `json:"status"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
