package service

import (
	"context"
	"testing"
	"time"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDepths = []float64{1000, 1001, 1002, 1003, 1004, 1005, 1006, 1007, 1008, 1009, 1010}
	testGR     = []float64{55.2, 60.1, 72.8, 81.3, 90.5, 95.0, 88.7, 75.4, 62.9, 58.3, 54.1}
	testRHOB   = []float64{2.45, 2.40, 2.35, -999.25, 2.28, 2.25, 2.30, 2.38, 2.42, 2.44, 2.46}
)

// seedWell stores one file with GR and RHOB curves over 1000-1010 m,
// RHOB carrying a null sentinel at 1003.
func seedWell(factory *fakeFactory) *entity.WellFile {
	file := &entity.WellFile{
		Id:         uuid.New(),
		Filename:   "test_well.las",
		StorageKey: "key_test_well.las",
		WellName:   "TEST WELL #1",
		FieldName:  "TEST FIELD",
		StartDepth: 1000,
		StopDepth:  1010,
		DepthStep:  1,
		DepthUnit:  "M",
		NullValue:  -999.25,
		CreatedAt:  time.Now(),
	}
	uow := factory.uow
	_ = uow.WellFileRepository().Create(context.Background(), file)
	_ = uow.CurveRepository().CreateBatch(context.Background(), []*entity.Curve{
		{
			Id: uuid.New(), FileId: file.Id, Name: "GR", Unit: "GAPI",
			Description: "GAMMA RAY", Position: 0,
			Depths: testDepths, Values: testGR, SampleCount: len(testGR),
		},
		{
			Id: uuid.New(), FileId: file.Id, Name: "RHOB", Unit: "G/C3",
			Description: "BULK DENSITY", Position: 1,
			Depths: testDepths, Values: testRHOB, SampleCount: len(testRHOB),
		},
	})
	return file
}

func TestExtractWindowsAndPreservesOrder(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := NewCurveDataService(factory)

	got, extracted, err := svc.Extract(context.Background(), file.Id, []string{"RHOB", "GR"}, 1002, 1004)
	require.NoError(t, err)
	require.Equal(t, file.Id, got.Id)
	require.Len(t, extracted, 2)

	// Caller order wins over declaration order.
	assert.Equal(t, "RHOB", extracted[0].Curve.Name)
	assert.Equal(t, "GR", extracted[1].Curve.Name)

	assert.Equal(t, []float64{1002, 1003, 1004}, extracted[0].Depths)
	// Sentinel passes through untouched.
	assert.Equal(t, []float64{2.35, -999.25, 2.28}, extracted[0].Values)
	assert.Equal(t, []float64{72.8, 81.3, 90.5}, extracted[1].Values)
}

func TestExtractClampsToFileBounds(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := NewCurveDataService(factory)

	_, extracted, err := svc.Extract(context.Background(), file.Id, []string{"GR"}, 0, 99999)
	require.NoError(t, err)
	assert.Equal(t, testDepths, extracted[0].Depths)
	assert.Equal(t, testGR, extracted[0].Values)
}

func TestExtractEmptyWindowIsEmptyResult(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := NewCurveDataService(factory)

	_, extracted, err := svc.Extract(context.Background(), file.Id, []string{"GR"}, 1000.2, 1000.8)
	require.NoError(t, err)
	assert.NotNil(t, extracted[0].Depths)
	assert.Empty(t, extracted[0].Depths)
	assert.Empty(t, extracted[0].Values)
}

func TestExtractInvertedWindowFails(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := NewCurveDataService(factory)

	_, _, err := svc.Extract(context.Background(), file.Id, []string{"GR"}, 1005, 1001)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestExtractUnknownCurveFails(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := NewCurveDataService(factory)

	_, _, err := svc.Extract(context.Background(), file.Id, []string{"GR", "NPHI"}, 1000, 1010)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestExtractMissingFileFails(t *testing.T) {
	factory := newFakeFactory()
	svc := NewCurveDataService(factory)

	_, _, err := svc.Extract(context.Background(), uuid.New(), []string{"GR"}, 1000, 1010)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestExtractIsRepeatable(t *testing.T) {
	factory := newFakeFactory()
	file := seedWell(factory)
	svc := NewCurveDataService(factory)

	_, first, err := svc.Extract(context.Background(), file.Id, []string{"GR"}, 1002, 1008)
	require.NoError(t, err)
	_, second, err := svc.Extract(context.Background(), file.Id, []string{"GR"}, 1002, 1008)
	require.NoError(t, err)

	assert.Equal(t, first[0].Depths, second[0].Depths)
	assert.Equal(t, first[0].Values, second[0].Values)
}
