package specification

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessibleBy matches chats the user owns or appears in the access set of.
// The access set is a jsonb array of user ids, so membership is a
// containment check.
type AccessibleBy struct {
	UserId string
}

func (s AccessibleBy) Apply(db *gorm.DB) *gorm.DB {
	member := fmt.Sprintf("[%q]", s.UserId)
	return db.Where("user_id = ? OR access_users @> ?", s.UserId, member)
}

// ByChatID filters child records by their parent chat
type ByChatID struct {
	ChatID uuid.UUID
}

func (s ByChatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatID)
}

// ByChatIDs filters child records by a set of parent chats
type ByChatIDs struct {
	ChatIDs []uuid.UUID
}

func (s ByChatIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id IN ?", s.ChatIDs)
}

// BySessionID filters messages by session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// BySenderID filters messages by sender
type BySenderID struct {
	SenderId string
}

func (s BySenderID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id = ?", s.SenderId)
}
