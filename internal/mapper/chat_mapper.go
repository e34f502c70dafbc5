package mapper

import (
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(c *model.Chat) *entity.Chat {
	if c == nil {
		return nil
	}
	return &entity.Chat{
		Id:          c.Id,
		UserId:      c.UserId,
		SessionId:   c.SessionId,
		Title:       c.Title,
		AccessUsers: []string(c.AccessUsers),
		Metadata:    map[string]interface{}(c.Metadata),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *ChatMapper) ToModel(c *entity.Chat) *model.Chat {
	if c == nil {
		return nil
	}
	return &model.Chat{
		Id:          c.Id,
		UserId:      c.UserId,
		SessionId:   c.SessionId,
		Title:       c.Title,
		AccessUsers: datatypes.NewJSONSlice(c.AccessUsers),
		Metadata:    datatypes.JSONMap(c.Metadata),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
