package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type WorkflowStatus string

const (
	WorkflowStatusDraft     WorkflowStatus = "draft"
	WorkflowStatusActive    WorkflowStatus = "active"
	WorkflowStatusCompleted WorkflowStatus = "completed"
	WorkflowStatusArchived  WorkflowStatus = "archived"
)

func (s WorkflowStatus) Valid() bool {
	switch s {
	case WorkflowStatusDraft, WorkflowStatusActive, WorkflowStatusCompleted, WorkflowStatusArchived:
		return true
	}
	return false
}

func (s WorkflowStatus) rank() int {
	switch s {
	case WorkflowStatusDraft:
		return 0
	case WorkflowStatusActive:
		return 1
	case WorkflowStatusCompleted:
		return 2
	}
	return -1
}

// CanTransition enforces the forward-only lifecycle
// draft -> active -> completed, with archived reachable from any state
// and itself terminal.
func (s WorkflowStatus) CanTransition(to WorkflowStatus) bool {
	if s == to {
		return true
	}
	if s == WorkflowStatusArchived {
		return false
	}
	if to == WorkflowStatusArchived {
		return true
	}
	return to.rank() == s.rank()+1
}

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ValidSemver reports whether v is a plain MAJOR.MINOR.PATCH version.
func ValidSemver(v string) bool {
	return semverPattern.MatchString(v)
}

type Workflow struct {
	Id          uuid.UUID
	UserId      string
	ChatId      uuid.UUID
	Name        string
	Version     string
	Description *string
	Graph       map[string]interface{}
	TechSpec    map[string]interface{}
	Status      WorkflowStatus
	Timestamp   time.Time
	Metadata    map[string]interface{}
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
