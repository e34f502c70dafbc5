package mapper

import (
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/model"
)

type APIKeyMapper struct{}

func NewAPIKeyMapper() *APIKeyMapper {
	return &APIKeyMapper{}
}

func (m *APIKeyMapper) ToEntity(k *model.APIKey) *entity.APIKey {
	if k == nil {
		return nil
	}
	return &entity.APIKey{
		Id:         k.Id,
		UserId:     k.UserId,
		Name:       k.Name,
		KeyPrefix:  k.KeyPrefix,
		KeyHash:    k.KeyHash,
		Admin:      k.Admin,
		Revoked:    k.Revoked,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
}

func (m *APIKeyMapper) ToModel(k *entity.APIKey) *model.APIKey {
	if k == nil {
		return nil
	}
	return &model.APIKey{
		Id:         k.Id,
		UserId:     k.UserId,
		Name:       k.Name,
		KeyPrefix:  k.KeyPrefix,
		KeyHash:    k.KeyHash,
		Admin:      k.Admin,
		Revoked:    k.Revoked,
		LastUsedAt: k.LastUsedAt,
		CreatedAt:  k.CreatedAt,
		UpdatedAt:  k.UpdatedAt,
	}
}
