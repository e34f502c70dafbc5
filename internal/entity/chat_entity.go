package entity

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Id          uuid.UUID
	UserId      string // owner
	SessionId   string
	Title       string
	AccessUsers []string // read access set, owner implicitly included
	Metadata    map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Scope returns the ownership view the access policy evaluates. Records
// belonging to a chat (sessions, messages, workflows) share this scope.
func (c *Chat) Scope() *AccessScope {
	if c == nil {
		return nil
	}
	return &AccessScope{OwnerId: c.UserId, AccessUsers: c.AccessUsers}
}

// NormalizeAccessUsers removes duplicates and the owner itself from the
// access set. The owner is always implicitly a member.
func (c *Chat) NormalizeAccessUsers() {
	seen := make(map[string]struct{}, len(c.AccessUsers))
	out := make([]string, 0, len(c.AccessUsers))
	for _, u := range c.AccessUsers {
		if u == "" || u == c.UserId {
			continue
		}
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	c.AccessUsers = out
}
