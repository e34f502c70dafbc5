package contract

import (
	"context"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/repository/specification"
)

// UserRepository has no delete: identity records are never swept.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
