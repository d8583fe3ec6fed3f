package contract

import (
	"context"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type InterpretationRepository interface {
	Create(ctx context.Context, interpretation *entity.Interpretation) error
	DeleteAllByFileId(ctx context.Context, fileId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interpretation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
