package unitofwork

import (
	"context"

	"welllog-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WellFileRepository() contract.WellFileRepository
	CurveRepository() contract.CurveRepository
	InterpretationRepository() contract.InterpretationRepository
}
