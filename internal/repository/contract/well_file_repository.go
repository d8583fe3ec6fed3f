package contract

import (
	"context"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WellFileRepository interface {
	Create(ctx context.Context, file *entity.WellFile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WellFile, error)
	// FindOneForUpdate acquires a row lock so concurrent deletes of the same
	// file serialize inside the surrounding transaction.
	FindOneForUpdate(ctx context.Context, id uuid.UUID) (*entity.WellFile, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WellFile, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
