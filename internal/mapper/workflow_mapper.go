package mapper

import (
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/model"

	"gorm.io/datatypes"
)

type WorkflowMapper struct{}

func NewWorkflowMapper() *WorkflowMapper {
	return &WorkflowMapper{}
}

func (m *WorkflowMapper) ToEntity(w *model.Workflow) *entity.Workflow {
	if w == nil {
		return nil
	}
	return &entity.Workflow{
		Id:          w.Id,
		UserId:      w.UserId,
		ChatId:      w.ChatId,
		Name:        w.Name,
		Version:     w.Version,
		Description: w.Description,
		Graph:       map[string]interface{}(w.Graph),
		TechSpec:    map[string]interface{}(w.TechSpec),
		Status:      entity.WorkflowStatus(w.Status),
		Timestamp:   w.Timestamp,
		Metadata:    map[string]interface{}(w.Metadata),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

func (m *WorkflowMapper) ToModel(w *entity.Workflow) *model.Workflow {
	if w == nil {
		return nil
	}
	return &model.Workflow{
		Id:          w.Id,
		UserId:      w.UserId,
		ChatId:      w.ChatId,
		Name:        w.Name,
		Version:     w.Version,
		Description: w.Description,
		Graph:       datatypes.JSONMap(w.Graph),
		TechSpec:    datatypes.JSONMap(w.TechSpec),
		Status:      string(w.Status),
		Timestamp:   w.Timestamp,
		Metadata:    datatypes.JSONMap(w.Metadata),
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
