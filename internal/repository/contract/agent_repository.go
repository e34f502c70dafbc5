package contract

import (
	"context"
	"time"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/repository/specification"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *entity.Agent) error
	Update(ctx context.Context, agent *entity.Agent) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agent, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Agent, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// DeleteOlderThan sweeps by last_active, not created_at: an agent that
	// keeps reporting activity is not stale.
	DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error)
}
