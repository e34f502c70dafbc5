package model

import (
	"time"

	"github.com/google/uuid"
)

type APIKey struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     string     `gorm:"type:varchar(255);not null;index"`
	Name       string     `gorm:"type:varchar(100);not null"`
	KeyPrefix  string     `gorm:"type:varchar(20);not null"`
	KeyHash    string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Admin      bool       `gorm:"default:false"`
	Revoked    bool       `gorm:"default:false;index"`
	LastUsedAt *time.Time
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
}

func (APIKey) TableName() string {
	return "api_keys"
}
