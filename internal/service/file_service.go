package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/pkg/logger"
	"welllog-ai-be/internal/repository/cache"
	"welllog-ai-be/internal/repository/memory"
	"welllog-ai-be/internal/repository/specification"
	"welllog-ai-be/internal/repository/unitofwork"
	"welllog-ai-be/pkg/events"
	"welllog-ai-be/pkg/las"
	pktNats "welllog-ai-be/pkg/nats"
	"welllog-ai-be/pkg/objstore"
	"welllog-ai-be/pkg/prompt"

	"github.com/google/uuid"
)

type IFileService interface {
	Upload(ctx context.Context, filename string, raw []byte) (*dto.UploadFileResponse, error)
	List(ctx context.Context) (*dto.GetFilesResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.GetFileResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteFileResponse, error)
	ListCurves(ctx context.Context, fileId uuid.UUID) (*dto.GetCurvesResponse, error)
	DepthRange(ctx context.Context, fileId uuid.UUID) (*dto.DepthRangeResponse, error)
}

type fileService struct {
	uowFactory       unitofwork.RepositoryFactory
	storage          objstore.Storage
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	vizCache         *cache.VisualizationCache
	groundingRepo    *memory.GroundingRepository
	log              logger.ILogger
}

func NewFileService(
	uowFactory unitofwork.RepositoryFactory,
	storage objstore.Storage,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	vizCache *cache.VisualizationCache,
	groundingRepo *memory.GroundingRepository,
	log logger.ILogger,
) IFileService {
	return &fileService{
		uowFactory:       uowFactory,
		storage:          storage,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		vizCache:         vizCache,
		groundingRepo:    groundingRepo,
		log:              log,
	}
}

func (s *fileService) Upload(ctx context.Context, filename string, raw []byte) (*dto.UploadFileResponse, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".las") {
		return nil, apperrors.Validationf("invalid file type, only .las files are allowed")
	}

	lasFile, err := las.Parse(raw)
	if err != nil {
		return nil, mapParseError(err)
	}

	storageKey := fmt.Sprintf("%s_%s", uuid.New(), filepath.Base(filename))
	if err := s.storage.Put(ctx, storageKey, bytes.NewReader(raw)); err != nil {
		return nil, apperrors.Storage("failed to store raw file", err)
	}

	file := &entity.WellFile{
		Id:         uuid.New(),
		Filename:   filepath.Base(filename),
		StorageKey: storageKey,
		FileURL:    s.storage.PublicURL(storageKey),
		FileSize:   int64(len(raw)),
		WellName:   lasFile.WellName,
		FieldName:  lasFile.FieldName,
		Company:    lasFile.Company,
		LogDate:    lasFile.Date,
		StartDepth: lasFile.StartDepth,
		StopDepth:  lasFile.StopDepth,
		DepthStep:  lasFile.Step,
		DepthUnit:  lasFile.DepthUnit,
		NullValue:  lasFile.NullValue,
		CreatedAt:  time.Now(),
	}

	curves := make([]*entity.Curve, len(lasFile.Curves))
	curveNames := make([]string, len(lasFile.Curves))
	for i, c := range lasFile.Curves {
		curves[i] = buildCurve(file.Id, i, c, lasFile)
		curveNames[i] = c.Mnemonic
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.WellFileRepository().Create(ctx, file); err != nil {
		_ = uow.Rollback()
		s.cleanupBlob(ctx, storageKey)
		return nil, err
	}
	if err := uow.CurveRepository().CreateBatch(ctx, curves); err != nil {
		_ = uow.Rollback()
		s.cleanupBlob(ctx, storageKey)
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		s.cleanupBlob(ctx, storageKey)
		return nil, err
	}

	s.publishEvent(ctx, events.TypeFileUploaded, file)
	s.audit(ctx, "file_uploaded", file.Id, file.Filename, fmt.Sprintf("%d curves, %d samples", len(curves), lasFile.SampleCount()))

	return &dto.UploadFileResponse{
		Message: "File uploaded successfully",
		File:    toFileResponse(file, curveNames),
	}, nil
}

func (s *fileService) List(ctx context.Context) (*dto.GetFilesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	files, err := uow.WellFileRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FileResponse, len(files))
	for i, f := range files {
		names, err := s.curveNames(ctx, uow, f.Id)
		if err != nil {
			return nil, err
		}
		responses[i] = toFileResponse(f, names)
	}

	return &dto.GetFilesResponse{Files: responses}, nil
}

func (s *fileService) Get(ctx context.Context, id uuid.UUID) (*dto.GetFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	file, err := uow.WellFileRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperrors.NotFoundf("file %s not found", id)
	}

	names, err := s.curveNames(ctx, uow, file.Id)
	if err != nil {
		return nil, err
	}

	return &dto.GetFileResponse{File: toFileResponse(file, names)}, nil
}

// Delete removes the file with its curves, interpretations and raw blob.
// Deleting an absent id is a no-op success so client retries stay simple.
func (s *fileService) Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	// Row lock so a concurrent read cannot observe a half-deleted file.
	file, err := uow.WellFileRepository().FindOneForUpdate(ctx, id)
	if err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if file == nil {
		_ = uow.Rollback()
		return &dto.DeleteFileResponse{Ok: true}, nil
	}

	if err := uow.InterpretationRepository().DeleteAllByFileId(ctx, id); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.CurveRepository().DeleteAllByFileId(ctx, id); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.WellFileRepository().Delete(ctx, id); err != nil {
		_ = uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Blob and cache cleanup is best effort once the rows are gone.
	if err := s.storage.Delete(ctx, file.StorageKey); err != nil {
		s.log.Warn("file", "failed to delete blob from storage", map[string]interface{}{
			"storage_key": file.StorageKey,
			"error":       err.Error(),
		})
	}
	s.vizCache.InvalidateFile(ctx, id.String())
	s.groundingRepo.Delete(id.String())

	s.publishEvent(ctx, events.TypeFileDeleted, file)
	s.audit(ctx, "file_deleted", file.Id, file.Filename, "")

	return &dto.DeleteFileResponse{Ok: true}, nil
}

func (s *fileService) ListCurves(ctx context.Context, fileId uuid.UUID) (*dto.GetCurvesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	file, err := uow.WellFileRepository().FindOne(ctx, specification.ByID{ID: fileId})
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperrors.NotFoundf("file %s not found", fileId)
	}

	curves, err := uow.CurveRepository().FindAllMetadata(ctx, fileId)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.CurveResponse, len(curves))
	for i, c := range curves {
		responses[i] = &dto.CurveResponse{
			Id:               c.Id,
			FileId:           c.FileId,
			CurveName:        c.Name,
			CurveUnit:        c.Unit,
			CurveDescription: c.Description,
			SampleCount:      c.SampleCount,
			MinValue:         c.MinValue,
			MaxValue:         c.MaxValue,
			MeanValue:        c.MeanValue,
		}
	}

	return &dto.GetCurvesResponse{Curves: responses}, nil
}

func (s *fileService) DepthRange(ctx context.Context, fileId uuid.UUID) (*dto.DepthRangeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	file, err := uow.WellFileRepository().FindOne(ctx, specification.ByID{ID: fileId})
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperrors.NotFoundf("file %s not found", fileId)
	}

	return &dto.DepthRangeResponse{
		StartDepth: file.StartDepth,
		StopDepth:  file.StopDepth,
		Step:       file.DepthStep,
		DepthUnit:  file.DepthUnit,
	}, nil
}

func (s *fileService) curveNames(ctx context.Context, uow unitofwork.UnitOfWork, fileId uuid.UUID) ([]string, error) {
	curves, err := uow.CurveRepository().FindAllMetadata(ctx, fileId)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(curves))
	for i, c := range curves {
		names[i] = c.Name
	}
	return names, nil
}

func (s *fileService) cleanupBlob(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.Warn("file", "failed to clean up blob after aborted ingestion", map[string]interface{}{
			"storage_key": key,
			"error":       err.Error(),
		})
	}
}

func (s *fileService) publishEvent(ctx context.Context, eventType string, file *entity.WellFile) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"file_id":  file.Id,
			"filename": file.Filename,
		},
		OccurredAt: time.Now(),
	}
	// Log but don't fail the request, event delivery is auxiliary.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("file", "failed to publish event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *fileService) audit(ctx context.Context, action string, fileId uuid.UUID, filename, detail string) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.AuditMessage{
		Action:     action,
		FileId:     fileId,
		Filename:   filename,
		Detail:     detail,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("file", "failed to publish audit message", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func buildCurve(fileId uuid.UUID, position int, c las.Curve, f *las.File) *entity.Curve {
	curve := &entity.Curve{
		Id:          uuid.New(),
		FileId:      fileId,
		Name:        c.Mnemonic,
		Unit:        c.Unit,
		Description: c.Description,
		Position:    position,
		Depths:      f.Depths,
		Values:      c.Values,
		SampleCount: len(c.Values),
	}

	ev := prompt.ComputeEvidence(c.Mnemonic, c.Unit, f.Depths, c.Values, f.NullValue)
	if ev.HasData {
		minV, maxV, meanV := ev.Min, ev.Max, ev.Mean
		curve.MinValue = &minV
		curve.MaxValue = &maxV
		curve.MeanValue = &meanV
	}
	return curve
}

func toFileResponse(f *entity.WellFile, curveNames []string) *dto.FileResponse {
	return &dto.FileResponse{
		Id:              f.Id,
		Filename:        f.Filename,
		FileURL:         f.FileURL,
		UploadDate:      f.CreatedAt,
		FileSize:        f.FileSize,
		WellName:        f.WellName,
		FieldName:       f.FieldName,
		Company:         f.Company,
		Date:            f.LogDate,
		StartDepth:      f.StartDepth,
		StopDepth:       f.StopDepth,
		Step:            f.DepthStep,
		DepthUnit:       f.DepthUnit,
		AvailableCurves: curveNames,
	}
}

func mapParseError(err error) error {
	var formatErr *las.FormatError
	if errors.As(err, &formatErr) {
		return apperrors.Format(formatErr.Reason, err)
	}
	var inconsistentErr *las.InconsistentDataError
	if errors.As(err, &inconsistentErr) {
		return apperrors.InconsistentData(inconsistentErr.Error(), err)
	}
	return apperrors.Format("failed to parse LAS file", err)
}
