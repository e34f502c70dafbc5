package implementation

import (
	"context"
	"errors"
	"time"

	"workflow-data-be/internal/entity"
	"workflow-data-be/internal/mapper"
	"workflow-data-be/internal/model"
	"workflow-data-be/internal/repository/contract"
	"workflow-data-be/internal/repository/specification"

	"gorm.io/gorm"
)

type WorkflowRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WorkflowMapper
}

func NewWorkflowRepository(db *gorm.DB) contract.WorkflowRepository {
	return &WorkflowRepositoryImpl{
		db:     db,
		mapper: mapper.NewWorkflowMapper(),
	}
}

func (r *WorkflowRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WorkflowRepositoryImpl) Create(ctx context.Context, workflow *entity.Workflow) error {
	m := r.mapper.ToModel(workflow)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*workflow = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkflowRepositoryImpl) Update(ctx context.Context, workflow *entity.Workflow) error {
	m := r.mapper.ToModel(workflow)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*workflow = *r.mapper.ToEntity(m)
	return nil
}

func (r *WorkflowRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Workflow, error) {
	var m model.Workflow
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WorkflowRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Workflow, error) {
	var models []*model.Workflow
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Workflow, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *WorkflowRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Workflow{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *WorkflowRepositoryImpl) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", threshold).Delete(&model.Workflow{})
	return result.RowsAffected, result.Error
}
