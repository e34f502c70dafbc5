package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	UserId   string  `json:"user_id" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required"`
	Nickname string  `json:"nickname" validate:"required"`
	Picture  *string `json:"picture,omitempty" validate:"omitempty,url"`
}

type UserResponse struct {
	Id            uuid.UUID  `json:"id"`
	UserId        string     `json:"user_id"`
	Email         string     `json:"email"`
	EmailVerified bool       `json:"email_verified"`
	Name          string     `json:"name"`
	Nickname      string     `json:"nickname"`
	Picture       *string    `json:"picture,omitempty"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	LoginsCount   int        `json:"logins_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
