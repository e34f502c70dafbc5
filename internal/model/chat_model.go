package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Chat struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      string                      `gorm:"type:varchar(255);not null;index"` // owner
	SessionId   string                      `gorm:"type:varchar(255);not null"`
	Title       string                      `gorm:"type:text"`
	AccessUsers datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'"`
	Metadata    datatypes.JSONMap           `gorm:"type:jsonb"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
}

func (Chat) TableName() string {
	return "chats"
}
