package contract

import (
	"context"
	"time"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/repository/specification"
)

type WorkflowRepository interface {
	Create(ctx context.Context, workflow *entity.Workflow) error
	Update(ctx context.Context, workflow *entity.Workflow) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workflow, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workflow, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error)
}
