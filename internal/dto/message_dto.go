package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequest struct {
	SenderId  string                 `json:"sender_id" validate:"required"`
	ChatId    uuid.UUID              `json:"chat_id" validate:"required"`
	SessionId uuid.UUID              `json:"session_id" validate:"required"`
	Type      string                 `json:"type" validate:"required,oneof=text image file json system"`
	Text      *string                `json:"text,omitempty"`
	Url       *string                `json:"url,omitempty" validate:"omitempty,url"`
	Json      map[string]interface{} `json:"json,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type ListMessagesQuery struct {
	ChatId    string `query:"chat_id"`
	SessionId string `query:"session_id"`
	SenderId  string `query:"sender_id"`
	Type      string `query:"type"`
	From      string `query:"from"`
	To        string `query:"to"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}

type MessageResponse struct {
	Id        uuid.UUID              `json:"id"`
	SenderId  string                 `json:"sender_id"`
	ChatId    uuid.UUID              `json:"chat_id"`
	SessionId uuid.UUID              `json:"session_id"`
	Timestamp time.Time              `json:"timestamp"`
	Type      string                 `json:"type"`
	Text      *string                `json:"text,omitempty"`
	Url       *string                `json:"url,omitempty"`
	Json      map[string]interface{} `json:"json,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
