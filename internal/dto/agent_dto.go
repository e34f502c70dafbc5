package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAgentRequest struct {
	UserId        string                 `json:"user_id" validate:"required"`
	Name          string                 `json:"name" validate:"required"`
	Description   *string                `json:"description,omitempty"`
	Type          string                 `json:"type" validate:"required"`
	Version       string                 `json:"version" validate:"required"`
	Config        map[string]interface{} `json:"config" validate:"required"`
	SystemMessage string                 `json:"system_message" validate:"required"`
	Src           string                 `json:"src" validate:"required"`
	Command       string                 `json:"command" validate:"required"`
	Capabilities  []string               `json:"capabilities,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type UpdateAgentRequest struct {
	Name               *string                `json:"name,omitempty"`
	Description        *string                `json:"description,omitempty"`
	Version            *string                `json:"version,omitempty"`
	Config             map[string]interface{} `json:"config,omitempty"`
	SystemMessage      *string                `json:"system_message,omitempty"`
	Src                *string                `json:"src,omitempty"`
	Command            *string                `json:"command,omitempty"`
	Status             *string                `json:"status,omitempty" validate:"omitempty,oneof=active inactive archived"`
	Capabilities       *[]string              `json:"capabilities,omitempty"`
	PerformanceMetrics map[string]interface{} `json:"performance_metrics,omitempty"`
	Metadata           map[string]interface{} `json:"metadata,omitempty"`
}

// RegisterAgentRequest upserts an agent keyed by (user_id, name, type).
type RegisterAgentRequest struct {
	UserId        string                 `json:"user_id" validate:"required"`
	Name          string                 `json:"name" validate:"required"`
	Type          string                 `json:"type" validate:"required"`
	Version       string                 `json:"version" validate:"required"`
	Config        map[string]interface{} `json:"config" validate:"required"`
	SystemMessage string                 `json:"system_message" validate:"required"`
	Src           string                 `json:"src" validate:"required"`
	Command       string                 `json:"command" validate:"required"`
	Description   *string                `json:"description,omitempty"`
	Capabilities  []string               `json:"capabilities,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type ListAgentsQuery struct {
	UserId string `query:"user_id"`
	Type   string `query:"type"`
	Status string `query:"status"`
	From   string `query:"from"`
	To     string `query:"to"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type AgentResponse struct {
	Id                 uuid.UUID              `json:"id"`
	UserId             string                 `json:"user_id"`
	Name               string                 `json:"name"`
	Description        *string                `json:"description,omitempty"`
	Type               string                 `json:"type"`
	Version            string                 `json:"version"`
	Config             map[string]interface{} `json:"config"`
	SystemMessage      string                 `json:"system_message"`
	Src                string                 `json:"src"`
	Command            string                 `json:"command"`
	Status             string                 `json:"status"`
	Capabilities       []string               `json:"capabilities"`
	PerformanceMetrics map[string]interface{} `json:"performance_metrics,omitempty"`
	Metadata           map[string]interface{} `json:"metadata,omitempty"`
	LastActive         time.Time              `json:"last_active"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}
