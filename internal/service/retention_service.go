package service

import (
	"context"
	"time"

	"workflow-data-be/internal/dto"
	"workflow-data-be/internal/pkg/apperror"
	"workflow-data-be/internal/pkg/logger"
	"workflow-data-be/internal/repository/unitofwork"
)

// IRetentionService deletes records older than a cutoff window. The sweep
// bypasses per-record access checks: it runs as a maintenance task, not on
// behalf of a principal. Users are identity records and are never swept.
type IRetentionService interface {
	Sweep(ctx context.Context, cutoffDays int) (*dto.CleanupResponse, error)
}

type retentionService struct {
	factory unitofwork.RepositoryFactory
	log     logger.ILogger
}

func NewRetentionService(factory unitofwork.RepositoryFactory, log logger.ILogger) IRetentionService {
	return &retentionService{factory: factory, log: log}
}

// Sweep removes records strictly older than now minus cutoffDays. Each
// collection is swept independently: a failure in one is reported and does
// not stop the others. The threshold is computed once so that every
// collection sees the same cutoff instant.
func (s *retentionService) Sweep(ctx context.Context, cutoffDays int) (*dto.CleanupResponse, error) {
	if cutoffDays <= 0 {
		return nil, apperror.NewConfiguration("cutoff days must be a positive number")
	}

	threshold := time.Now().UTC().AddDate(0, 0, -cutoffDays)
	uow := s.factory.NewUnitOfWork(ctx)

	targets := []struct {
		name   string
		delete func(context.Context, time.Time) (int64, error)
	}{
		{"chats", uow.ChatRepository().DeleteOlderThan},
		{"sessions", uow.SessionRepository().DeleteOlderThan},
		{"messages", uow.MessageRepository().DeleteOlderThan},
		{"workflows", uow.WorkflowRepository().DeleteOlderThan},
		{"agents", uow.AgentRepository().DeleteOlderThan},
	}

	response := &dto.CleanupResponse{
		Deleted:   make(map[string]int64, len(targets)),
		Failed:    make(map[string]string),
		Threshold: threshold,
	}

	for _, target := range targets {
		deleted, err := target.delete(ctx, threshold)
		if err != nil {
			response.Failed[target.name] = err.Error()
			s.log.Error("retention", "sweep failed for collection", map[string]interface{}{
				"collection": target.name,
				"error":      err.Error(),
			})
			continue
		}
		response.Deleted[target.name] = deleted
	}

	if len(response.Failed) == 0 {
		response.Failed = nil
	}

	s.log.Info("retention", "sweep finished", map[string]interface{}{
		"threshold": threshold.Format(time.RFC3339),
		"deleted":   response.Deleted,
	})
	return response, nil
}
