package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id            uuid.UUID
	UserId        string // external identity, immutable after creation
	Email         string
	EmailVerified bool
	Name          string
	Nickname      string
	Picture       *string
	LastIp        *string
	LastLogin     *time.Time
	LoginsCount   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
