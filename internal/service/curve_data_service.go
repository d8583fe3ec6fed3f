package service

import (
	"context"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/repository/specification"
	"welllog-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ExtractedCurve is one requested curve with its samples windowed to the
// clamped depth range. Null sentinels pass through untouched.
type ExtractedCurve struct {
	Curve  *entity.Curve
	Depths []float64
	Values []float64
}

// ICurveDataService is the windowed read path shared by visualization and
// interpretation.
type ICurveDataService interface {
	// Extract returns the owning file plus the requested curves, in caller
	// order, windowed to [startDepth, endDepth] clamped to the file bounds.
	// An empty clamped window yields empty series, not an error.
	Extract(ctx context.Context, fileId uuid.UUID, curveNames []string, startDepth, endDepth float64) (*entity.WellFile, []*ExtractedCurve, error)
}

type curveDataService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCurveDataService(uowFactory unitofwork.RepositoryFactory) ICurveDataService {
	return &curveDataService{
		uowFactory: uowFactory,
	}
}

func (s *curveDataService) Extract(ctx context.Context, fileId uuid.UUID, curveNames []string, startDepth, endDepth float64) (*entity.WellFile, []*ExtractedCurve, error) {
	if startDepth > endDepth {
		return nil, nil, apperrors.Validationf("start_depth %g is greater than end_depth %g", startDepth, endDepth)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	file, err := uow.WellFileRepository().FindOne(ctx, specification.ByID{ID: fileId})
	if err != nil {
		return nil, nil, err
	}
	if file == nil {
		return nil, nil, apperrors.NotFoundf("file %s not found", fileId)
	}

	curves, err := uow.CurveRepository().FindAll(ctx,
		specification.ByFileID{FileID: fileId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, nil, err
	}

	byName := make(map[string]*entity.Curve, len(curves))
	for _, c := range curves {
		byName[c.Name] = c
	}

	start, end := file.ClampWindow(startDepth, endDepth)

	extracted := make([]*ExtractedCurve, 0, len(curveNames))
	for _, name := range curveNames {
		c, ok := byName[name]
		if !ok {
			return nil, nil, apperrors.Validationf("curve %q does not belong to file %s", name, fileId)
		}
		depths, values := c.Window(start, end)
		extracted = append(extracted, &ExtractedCurve{
			Curve:  c,
			Depths: depths,
			Values: values,
		})
	}

	return file, extracted, nil
}
