package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Session struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ChatId    uuid.UUID         `gorm:"type:uuid;not null;index"`
	UserId    string            `gorm:"type:varchar(255);not null;index"`
	Timestamp time.Time         `gorm:"not null;index"`
	DeviceId  string            `gorm:"type:varchar(255);not null"`
	Ip        string            `gorm:"type:varchar(64);not null"`
	Status    string            `gorm:"type:varchar(16);not null;default:'active';index"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
}

func (Session) TableName() string {
	return "sessions"
}
