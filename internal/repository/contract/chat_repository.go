package contract

import (
	"context"
	"time"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/repository/specification"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	Update(ctx context.Context, chat *entity.Chat) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Chat, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Chat, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error)
}
