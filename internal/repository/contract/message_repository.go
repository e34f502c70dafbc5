package contract

import (
	"context"
	"time"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/repository/specification"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error)
}
