package service

import (
	"context"
	"testing"

	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/repository/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVisualizationService(factory *fakeFactory) IVisualizationService {
	return NewVisualizationService(
		NewCurveDataService(factory),
		cache.NewVisualizationCache(nil),
		nopLogger{},
	)
}

func floatPtr(v float64) *float64 { return &v }

func TestBuildVisualizationWindow(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := newTestVisualizationService(factory)

	res, err := svc.BuildVisualization(context.Background(), &dto.VisualizeRequest{
		FileId:     file.Id,
		Curves:     []string{"RHOB", "GR"},
		StartDepth: floatPtr(1002),
		EndDepth:   floatPtr(1004),
	})
	require.NoError(t, err)

	assert.Equal(t, "test_well.las", res.FileInfo.Filename)
	assert.Equal(t, "TEST WELL #1", res.FileInfo.WellName)
	assert.Equal(t, float64(1000), res.FileInfo.StartDepth)
	assert.Equal(t, float64(1010), res.FileInfo.StopDepth)

	require.Len(t, res.Curves, 2)
	// Caller order, with sentinels passed through for the renderer.
	assert.Equal(t, "RHOB", res.Curves[0].Name)
	assert.Equal(t, []float64{2.35, -999.25, 2.28}, res.Curves[0].Values)
	assert.Equal(t, "GR", res.Curves[1].Name)
	assert.Equal(t, []float64{1002, 1003, 1004}, res.Curves[1].Depths)
}

func TestBuildVisualizationDefaultsToFullRange(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := newTestVisualizationService(factory)

	res, err := svc.BuildVisualization(context.Background(), &dto.VisualizeRequest{
		FileId: file.Id,
		Curves: []string{"GR"},
	})
	require.NoError(t, err)
	require.Len(t, res.Curves, 1)
	assert.Equal(t, testDepths, res.Curves[0].Depths)
	assert.Equal(t, testGR, res.Curves[0].Values)
}

func TestBuildVisualizationUnknownCurve(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := newTestVisualizationService(factory)

	_, err := svc.BuildVisualization(context.Background(), &dto.VisualizeRequest{
		FileId: file.Id,
		Curves: []string{"NPHI"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestBuildVisualizationMissingFile(t *testing.T) {
	factory := newFakeFactory()
	svc := newTestVisualizationService(factory)

	_, err := svc.BuildVisualization(context.Background(), &dto.VisualizeRequest{
		FileId: uuid.New(),
		Curves: []string{"GR"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
