package contract

import (
	"context"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/repository/specification"
)

type APIKeyRepository interface {
	Create(ctx context.Context, key *entity.APIKey) error
	Update(ctx context.Context, key *entity.APIKey) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.APIKey, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.APIKey, error)
}
