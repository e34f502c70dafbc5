package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId  string            `gorm:"type:varchar(255);not null;index"`
	ChatId    uuid.UUID         `gorm:"type:uuid;not null;index"`
	SessionId uuid.UUID         `gorm:"type:uuid;not null;index"`
	Timestamp time.Time         `gorm:"not null;index"`
	Type      string            `gorm:"type:varchar(16);not null"`
	Text      *string           `gorm:"type:text"`
	Url       *string           `gorm:"type:text"`
	Json      datatypes.JSONMap `gorm:"type:jsonb"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime"`
}

func (Message) TableName() string {
	return "messages"
}
