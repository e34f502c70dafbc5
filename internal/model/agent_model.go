package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Agent struct {
	Id                 uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             string                      `gorm:"type:varchar(255);not null;index;index:idx_agents_registration,unique"`
	Name               string                      `gorm:"type:varchar(255);not null;index:idx_agents_registration,unique"`
	Description        *string                     `gorm:"type:text"`
	Type               string                      `gorm:"type:varchar(32);not null;index:idx_agents_registration,unique"`
	Version            string                      `gorm:"type:varchar(32);not null"`
	Config             datatypes.JSONMap           `gorm:"type:jsonb;not null"`
	SystemMessage      string                      `gorm:"type:text;not null"`
	Src                string                      `gorm:"type:text;not null"`
	Command            string                      `gorm:"type:text;not null"`
	Status             string                      `gorm:"type:varchar(16);not null;default:'active';index"`
	Capabilities       datatypes.JSONSlice[string] `gorm:"type:jsonb;default:'[]'"`
	PerformanceMetrics datatypes.JSONMap           `gorm:"type:jsonb"`
	Metadata           datatypes.JSONMap           `gorm:"type:jsonb"`
	LastActive         time.Time                   `gorm:"not null;index"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time                   `gorm:"autoUpdateTime"`
}

func (Agent) TableName() string {
	return "agents"
}
