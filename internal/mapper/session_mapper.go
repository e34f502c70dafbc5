package mapper

import (
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/model"

	"gorm.io/datatypes"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:        s.Id,
		ChatId:    s.ChatId,
		UserId:    s.UserId,
		Timestamp: s.Timestamp,
		DeviceId:  s.DeviceId,
		Ip:        s.Ip,
		Status:    entity.SessionStatus(s.Status),
		Metadata:  map[string]interface{}(s.Metadata),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:        s.Id,
		ChatId:    s.ChatId,
		UserId:    s.UserId,
		Timestamp: s.Timestamp,
		DeviceId:  s.DeviceId,
		Ip:        s.Ip,
		Status:    string(s.Status),
		Metadata:  datatypes.JSONMap(s.Metadata),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
