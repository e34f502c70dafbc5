package mapper

import (
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/model"

	"gorm.io/datatypes"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		SenderId:  msg.SenderId,
		ChatId:    msg.ChatId,
		SessionId: msg.SessionId,
		Timestamp: msg.Timestamp,
		Type:      entity.MessageType(msg.Type),
		Text:      msg.Text,
		Url:       msg.Url,
		Json:      map[string]interface{}(msg.Json),
		Metadata:  map[string]interface{}(msg.Metadata),
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.UpdatedAt,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		SenderId:  msg.SenderId,
		ChatId:    msg.ChatId,
		SessionId: msg.SessionId,
		Timestamp: msg.Timestamp,
		Type:      string(msg.Type),
		Text:      msg.Text,
		Url:       msg.Url,
		Json:      datatypes.JSONMap(msg.Json),
		Metadata:  datatypes.JSONMap(msg.Metadata),
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.UpdatedAt,
	}
}
