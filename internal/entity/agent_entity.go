package entity

import (
	"time"

	"github.com/google/uuid"
)

type AgentType string

const (
	AgentTypeWorkflowCreator      AgentType = "workflow_creator"
	AgentTypeProblemUnderstanding AgentType = "problem_understanding"
	AgentTypeTaskExecutor         AgentType = "task_executor"
	AgentTypeCodeGenerator        AgentType = "code_generator"
	AgentTypeDataProcessor        AgentType = "data_processor"
	AgentTypeSystem               AgentType = "system"
)

func (t AgentType) Valid() bool {
	switch t {
	case AgentTypeWorkflowCreator, AgentTypeProblemUnderstanding, AgentTypeTaskExecutor,
		AgentTypeCodeGenerator, AgentTypeDataProcessor, AgentTypeSystem:
		return true
	}
	return false
}

type AgentStatus string

const (
	AgentStatusActive   AgentStatus = "active"
	AgentStatusInactive AgentStatus = "inactive"
	AgentStatusArchived AgentStatus = "archived"
)

func (s AgentStatus) Valid() bool {
	switch s {
	case AgentStatusActive, AgentStatusInactive, AgentStatusArchived:
		return true
	}
	return false
}

// CanTransition: active and inactive swap freely, archived is terminal.
func (s AgentStatus) CanTransition(to AgentStatus) bool {
	if s == to {
		return true
	}
	return s != AgentStatusArchived
}

type Agent struct {
	Id                 uuid.UUID
	UserId             string
	Name               string
	Description        *string
	Type               AgentType
	Version            string
	Config             map[string]interface{}
	SystemMessage      string
	Src                string
	Command            string
	Status             AgentStatus
	Capabilities       []string
	PerformanceMetrics map[string]interface{}
	Metadata           map[string]interface{}
	LastActive         time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
