package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Workflow struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      string            `gorm:"type:varchar(255);not null;index"`
	ChatId      uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name        string            `gorm:"type:varchar(255);not null"`
	Version     string            `gorm:"type:varchar(32);not null"`
	Description *string           `gorm:"type:text"`
	Graph       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	TechSpec    datatypes.JSONMap `gorm:"type:jsonb"`
	Status      string            `gorm:"type:varchar(16);not null;default:'draft';index"`
	Timestamp   time.Time         `gorm:"not null;index"`
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`
}

func (Workflow) TableName() string {
	return "workflows"
}
