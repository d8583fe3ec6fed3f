package contract

import (
	"context"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type CurveRepository interface {
	CreateBatch(ctx context.Context, curves []*entity.Curve) error
	DeleteAllByFileId(ctx context.Context, fileId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Curve, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Curve, error)
	// FindAllMetadata returns curves without their sample arrays, in
	// declaration order.
	FindAllMetadata(ctx context.Context, fileId uuid.UUID) ([]*entity.Curve, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
