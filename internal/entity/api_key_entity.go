package entity

import (
	"time"

	"github.com/google/uuid"
)

// APIKey is a stored credential identifying a principal. Only the SHA-256
// hash of the key is persisted; the plain key leaves the server exactly
// once, at issuance.
type APIKey struct {
	Id         uuid.UUID
	UserId     string
	Name       string
	KeyPrefix  string
	KeyHash    string
	Admin      bool
	Revoked    bool
	LastUsedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
