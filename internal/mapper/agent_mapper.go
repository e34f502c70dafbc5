package mapper

import (
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/model"

	"gorm.io/datatypes"
)

type AgentMapper struct{}

func NewAgentMapper() *AgentMapper {
	return &AgentMapper{}
}

func (m *AgentMapper) ToEntity(a *model.Agent) *entity.Agent {
	if a == nil {
		return nil
	}
	return &entity.Agent{
		Id:                 a.Id,
		UserId:             a.UserId,
		Name:               a.Name,
		Description:        a.Description,
		Type:               entity.AgentType(a.Type),
		Version:            a.Version,
		Config:             map[string]interface{}(a.Config),
		SystemMessage:      a.SystemMessage,
		Src:                a.Src,
		Command:            a.Command,
		Status:             entity.AgentStatus(a.Status),
		Capabilities:       []string(a.Capabilities),
		PerformanceMetrics: map[string]interface{}(a.PerformanceMetrics),
		Metadata:           map[string]interface{}(a.Metadata),
		LastActive:         a.LastActive,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func (m *AgentMapper) ToModel(a *entity.Agent) *model.Agent {
	if a == nil {
		return nil
	}
	return &model.Agent{
		Id:                 a.Id,
		UserId:             a.UserId,
		Name:               a.Name,
		Description:        a.Description,
		Type:               string(a.Type),
		Version:            a.Version,
		Config:             datatypes.JSONMap(a.Config),
		SystemMessage:      a.SystemMessage,
		Src:                a.Src,
		Command:            a.Command,
		Status:             string(a.Status),
		Capabilities:       datatypes.NewJSONSlice(a.Capabilities),
		PerformanceMetrics: datatypes.JSONMap(a.PerformanceMetrics),
		Metadata:           datatypes.JSONMap(a.Metadata),
		LastActive:         a.LastActive,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}
