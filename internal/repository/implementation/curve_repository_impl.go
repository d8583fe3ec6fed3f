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
)

type CurveRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CurveMapper
}

func NewCurveRepository(db *gorm.DB) contract.CurveRepository {
	return &CurveRepositoryImpl{
		db:     db,
		mapper: mapper.NewCurveMapper(),
	}
}

func (r *CurveRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CurveRepositoryImpl) CreateBatch(ctx context.Context, curves []*entity.Curve) error {
	if len(curves) == 0 {
		return nil
	}
	models := make([]*model.Curve, len(curves))
	for i, c := range curves {
		models[i] = r.mapper.ToModel(c)
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*curves[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *CurveRepositoryImpl) DeleteAllByFileId(ctx context.Context, fileId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("file_id = ?", fileId).Delete(&model.Curve{}).Error
}

func (r *CurveRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Curve, error) {
	var m model.Curve
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CurveRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Curve, error) {
	var models []*model.Curve
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CurveRepositoryImpl) FindAllMetadata(ctx context.Context, fileId uuid.UUID) ([]*entity.Curve, error) {
	return r.FindAll(ctx,
		specification.ByFileID{FileID: fileId},
		specification.SelectColumns{Columns: []string{
			"id", "file_id", "name", "unit", "description", "position",
			"sample_count", "min_value", "max_value", "mean_value",
		}},
		specification.OrderBy{Field: "position"},
	)
}

func (r *CurveRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Curve{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
