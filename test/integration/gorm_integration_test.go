package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/repository/specification"
	"welllog-ai-be/internal/repository/unitofwork"
	"welllog-ai-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.WellFileRepository())
	assert.NotNil(t, uow.CurveRepository())
	assert.NotNil(t, uow.InterpretationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check WellFile Repository", func(t *testing.T) {
		count, err := uow.WellFileRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("WellFile count: %d", count)
	})

	t.Run("Transactional ingest and cascade delete", func(t *testing.T) {
		ctx := context.Background()
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))

		file := &entity.WellFile{
			Id:         uuid.New(),
			Filename:   "integration_test.las",
			StorageKey: "integration_test_key",
			WellName:   "INTEGRATION WELL",
			StartDepth: 100,
			StopDepth:  110,
			DepthStep:  1,
			DepthUnit:  "M",
			NullValue:  -999.25,
			CreatedAt:  time.Now(),
		}
		require.NoError(t, txUow.WellFileRepository().Create(ctx, file))

		curve := &entity.Curve{
			Id:          uuid.New(),
			FileId:      file.Id,
			Name:        "GR",
			Unit:        "GAPI",
			Position:    0,
			Depths:      []float64{100, 101, 102},
			Values:      []float64{10, 20, 30},
			SampleCount: 3,
		}
		require.NoError(t, txUow.CurveRepository().CreateBatch(ctx, []*entity.Curve{curve}))
		require.NoError(t, txUow.Commit())

		// Read back includes the JSON sample arrays.
		stored, err := uow.CurveRepository().FindOne(ctx, specification.ByFileID{FileID: file.Id})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, []float64{100, 101, 102}, stored.Depths)
		assert.Equal(t, []float64{10, 20, 30}, stored.Values)

		// Cleanup mirrors the delete cascade.
		cleanup := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, cleanup.Begin(ctx))
		require.NoError(t, cleanup.CurveRepository().DeleteAllByFileId(ctx, file.Id))
		require.NoError(t, cleanup.InterpretationRepository().DeleteAllByFileId(ctx, file.Id))
		require.NoError(t, cleanup.WellFileRepository().Delete(ctx, file.Id))
		require.NoError(t, cleanup.Commit())

		gone, err := uow.WellFileRepository().FindOne(ctx, specification.ByID{ID: file.Id})
		require.NoError(t, err)
		assert.Nil(t, gone)
	})
}
