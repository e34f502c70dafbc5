package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateWorkflowRequest struct {
	UserId      string                 `json:"user_id" validate:"required"`
	ChatId      uuid.UUID              `json:"chat_id" validate:"required"`
	Name        string                 `json:"name" validate:"required"`
	Version     string                 `json:"version" validate:"required"`
	Description *string                `json:"description,omitempty"`
	Graph       map[string]interface{} `json:"graph" validate:"required"`
	TechSpec    map[string]interface{} `json:"tech_spec,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateWorkflowRequest struct {
	Name        *string                `json:"name,omitempty"`
	Version     *string                `json:"version,omitempty"`
	Description *string                `json:"description,omitempty"`
	Graph       map[string]interface{} `json:"graph,omitempty"`
	TechSpec    map[string]interface{} `json:"tech_spec,omitempty"`
	Status      *string                `json:"status,omitempty" validate:"omitempty,oneof=draft active completed archived"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

type ListWorkflowsQuery struct {
	UserId string `query:"user_id"`
	ChatId string `query:"chat_id"`
	Status string `query:"status"`
	From   string `query:"from"`
	To     string `query:"to"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type WorkflowResponse struct {
	Id          uuid.UUID              `json:"id"`
	UserId      string                 `json:"user_id"`
	ChatId      uuid.UUID              `json:"chat_id"`
	Name        string                 `json:"name"`
	Version     string                 `json:"version"`
	Description *string                `json:"description,omitempty"`
	Graph       map[string]interface{} `json:"graph"`
	TechSpec    map[string]interface{} `json:"tech_spec,omitempty"`
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}
