package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email         string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	EmailVerified bool       `gorm:"default:false"`
	Name          string     `gorm:"type:varchar(255);not null"`
	Nickname      string     `gorm:"type:varchar(255);not null"`
	Picture       *string    `gorm:"type:text"`
	LastIp        *string    `gorm:"type:varchar(64)"`
	LastLogin     *time.Time `gorm:"index"`
	LoginsCount   int        `gorm:"default:0"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
