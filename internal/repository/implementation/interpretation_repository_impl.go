package implementation

import (
	"context"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/mapper"
	"welllog-ai-be/internal/model"
	"welllog-ai-be/internal/repository/contract"
	"welllog-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterpretationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InterpretationMapper
}

func NewInterpretationRepository(db *gorm.DB) contract.InterpretationRepository {
	return &InterpretationRepositoryImpl{
		db:     db,
		mapper: mapper.NewInterpretationMapper(),
	}
}

func (r *InterpretationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InterpretationRepositoryImpl) Create(ctx context.Context, interpretation *entity.Interpretation) error {
	m := r.mapper.ToModel(interpretation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*interpretation = *r.mapper.ToEntity(m)
	return nil
}

func (r *InterpretationRepositoryImpl) DeleteAllByFileId(ctx context.Context, fileId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("file_id = ?", fileId).Delete(&model.Interpretation{}).Error
}

func (r *InterpretationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interpretation, error) {
	var models []*model.Interpretation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InterpretationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Interpretation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
