package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateChatRequest struct {
	UserId      string                 `json:"user_id" validate:"required"`
	SessionId   string                 `json:"session_id" validate:"required"`
	Title       string                 `json:"title,omitempty"`
	AccessUsers []string               `json:"access_users,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateChatRequest struct {
	Title       *string                `json:"title,omitempty"`
	AccessUsers *[]string              `json:"access_users,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// ListChatsQuery carries the equality filters a list call supports; unset
// fields leave that column unrestricted.
type ListChatsQuery struct {
	UserId    string `query:"user_id"`
	SessionId string `query:"session_id"`
	From      string `query:"from"`
	To        string `query:"to"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}

type ChatResponse struct {
	Id          uuid.UUID              `json:"id"`
	UserId      string                 `json:"user_id"`
	SessionId   string                 `json:"session_id"`
	Title       string                 `json:"title,omitempty"`
	AccessUsers []string               `json:"access_users"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
