package unitofwork

import (
	"context"

	"workflow-data-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatRepository() contract.ChatRepository
	SessionRepository() contract.SessionRepository
	MessageRepository() contract.MessageRepository
	WorkflowRepository() contract.WorkflowRepository
	AgentRepository() contract.AgentRepository
	APIKeyRepository() contract.APIKeyRepository
}
