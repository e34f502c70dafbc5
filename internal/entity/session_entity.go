package entity

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionStatusActive   SessionStatus = "active"
	SessionStatusInactive SessionStatus = "inactive"
)

func (s SessionStatus) Valid() bool {
	return s == SessionStatusActive || s == SessionStatusInactive
}

// CanTransition allows active -> inactive only; no reactivation.
func (s SessionStatus) CanTransition(to SessionStatus) bool {
	if s == to {
		return true
	}
	return s == SessionStatusActive && to == SessionStatusInactive
}

type Session struct {
	Id        uuid.UUID
	ChatId    uuid.UUID
	UserId    string
	Timestamp time.Time
	DeviceId  string
	Ip        string
	Status    SessionStatus
	Metadata  map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}
