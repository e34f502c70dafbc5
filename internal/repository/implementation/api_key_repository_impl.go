package implementation

import (
	"context"
	"errors"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/mapper"
	"workflow-data-be/internal/model"
	"workflow-data-be/internal/repository/contract"
	"workflow-data-be/internal/repository/specification"

	"gorm.io/gorm"
)

type APIKeyRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.APIKeyMapper
}

func NewAPIKeyRepository(db *gorm.DB) contract.APIKeyRepository {
	return &APIKeyRepositoryImpl{
		db:     db,
		mapper: mapper.NewAPIKeyMapper(),
	}
}

func (r *APIKeyRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *APIKeyRepositoryImpl) Create(ctx context.Context, key *entity.APIKey) error {
	m := r.mapper.ToModel(key)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*key = *r.mapper.ToEntity(m)
	return nil
}

func (r *APIKeyRepositoryImpl) Update(ctx context.Context, key *entity.APIKey) error {
	m := r.mapper.ToModel(key)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*key = *r.mapper.ToEntity(m)
	return nil
}

func (r *APIKeyRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.APIKey, error) {
	var m model.APIKey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *APIKeyRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.APIKey, error) {
	var models []*model.APIKey
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.APIKey, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}
