package mapper

import (
	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:            u.Id,
		UserId:        u.UserId,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Name:          u.Name,
		Nickname:      u.Nickname,
		Picture:       u.Picture,
		LastIp:        u.LastIp,
		LastLogin:     u.LastLogin,
		LoginsCount:   u.LoginsCount,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:            u.Id,
		UserId:        u.UserId,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Name:          u.Name,
		Nickname:      u.Nickname,
		Picture:       u.Picture,
		LastIp:        u.LastIp,
		LastLogin:     u.LastLogin,
		LoginsCount:   u.LoginsCount,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
