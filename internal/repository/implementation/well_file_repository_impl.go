package implementation

import (
	"context"
	"errors"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/mapper"
	"welllog-ai-be/internal/model"
	"welllog-ai-be/internal/repository/contract"
	"welllog-ai-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WellFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellFileMapper
}

func NewWellFileRepository(db *gorm.DB) contract.WellFileRepository {
	return &WellFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewWellFileMapper(),
	}
}

func (r *WellFileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WellFileRepositoryImpl) Create(ctx context.Context, file *entity.WellFile) error {
	m := r.mapper.ToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(m)
	return nil
}

func (r *WellFileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.WellFile{}, id).Error
}

func (r *WellFileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WellFile, error) {
	var m model.WellFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WellFileRepositoryImpl) FindOneForUpdate(ctx context.Context, id uuid.UUID) (*entity.WellFile, error) {
	var m model.WellFile
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WellFileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WellFile, error) {
	var models []*model.WellFile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WellFileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.WellFile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
