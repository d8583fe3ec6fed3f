package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/pkg/logger"
	"welllog-ai-be/internal/repository/specification"
	"welllog-ai-be/internal/repository/unitofwork"
	"welllog-ai-be/pkg/events"
	"welllog-ai-be/pkg/llm"
	pktNats "welllog-ai-be/pkg/nats"
	"welllog-ai-be/pkg/prompt"

	"github.com/google/uuid"
)

type IInterpretationService interface {
	Interpret(ctx context.Context, req *dto.InterpretRequest) (*dto.InterpretResponse, error)
	ListInterpretations(ctx context.Context, fileId uuid.UUID) (*dto.GetInterpretationsResponse, error)
}

type interpretationService struct {
	uowFactory        unitofwork.RepositoryFactory
	curveData         ICurveDataService
	llmProvider       llm.LLMProvider
	publisherService  IPublisherService
	eventPublisher    *pktNats.Publisher
	generationTimeout time.Duration
	log               logger.ILogger
}

func NewInterpretationService(
	uowFactory unitofwork.RepositoryFactory,
	curveData ICurveDataService,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	generationTimeout time.Duration,
	log logger.ILogger,
) IInterpretationService {
	return &interpretationService{
		uowFactory:        uowFactory,
		curveData:         curveData,
		llmProvider:       llmProvider,
		publisherService:  publisherService,
		eventPublisher:    eventPublisher,
		generationTimeout: generationTimeout,
		log:               log,
	}
}

func (s *interpretationService) Interpret(ctx context.Context, req *dto.InterpretRequest) (*dto.InterpretResponse, error) {
	startDepth := *req.StartDepth
	endDepth := *req.EndDepth

	file, extracted, err := s.curveData.Extract(ctx, req.FileId, req.Curves, startDepth, endDepth)
	if err != nil {
		return nil, err
	}

	clampedStart, clampedEnd := file.ClampWindow(startDepth, endDepth)

	evidence := make([]prompt.CurveEvidence, len(extracted))
	for i, ex := range extracted {
		evidence[i] = prompt.ComputeEvidence(ex.Curve.Name, ex.Curve.Unit, ex.Depths, ex.Values, file.NullValue)
	}

	well := prompt.WellContext{
		WellName:   file.WellName,
		FieldName:  file.FieldName,
		Company:    file.Company,
		DepthUnit:  file.DepthUnit,
		StartDepth: clampedStart,
		EndDepth:   clampedEnd,
	}
	grounded := prompt.NewInterpretationBuilder(well, evidence).Build()

	// The generation call is the only slow step; it runs outside any store
	// transaction and under its own deadline. Nothing persists on failure.
	genCtx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()

	text, err := s.llmProvider.Generate(genCtx, grounded)
	if err != nil {
		return nil, apperrors.Generation("interpretation generation failed", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.Generation("model returned empty interpretation", nil)
	}

	interpretation := &entity.Interpretation{
		Id:             uuid.New(),
		FileId:         req.FileId,
		CurvesAnalyzed: req.Curves,
		StartDepth:     clampedStart,
		EndDepth:       clampedEnd,
		Text:           text,
		ModelUsed:      s.llmProvider.ModelName(),
		CreatedAt:      time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InterpretationRepository().Create(ctx, interpretation); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, interpretation)
	s.audit(ctx, interpretation, file.Filename)

	return &dto.InterpretResponse{
		Interpretation: toInterpretationResponse(interpretation),
	}, nil
}

func (s *interpretationService) ListInterpretations(ctx context.Context, fileId uuid.UUID) (*dto.GetInterpretationsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	file, err := uow.WellFileRepository().FindOne(ctx, specification.ByID{ID: fileId})
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, apperrors.NotFoundf("file %s not found", fileId)
	}

	interpretations, err := uow.InterpretationRepository().FindAll(ctx,
		specification.ByFileID{FileID: fileId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.InterpretationResponse, len(interpretations))
	for i, it := range interpretations {
		responses[i] = toInterpretationResponse(it)
	}

	return &dto.GetInterpretationsResponse{Interpretations: responses}, nil
}

func (s *interpretationService) publishEvent(ctx context.Context, it *entity.Interpretation) {
	if s.eventPublisher == nil {
		return
	}
	evt := events.BaseEvent{
		Type: events.TypeInterpretationCreated,
		Data: map[string]interface{}{
			"interpretation_id": it.Id,
			"file_id":           it.FileId,
			"model_used":        it.ModelUsed,
		},
		OccurredAt: time.Now(),
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("interpretation", "failed to publish event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *interpretationService) audit(ctx context.Context, it *entity.Interpretation, filename string) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.AuditMessage{
		Action:     "interpretation_created",
		FileId:     it.FileId,
		Filename:   filename,
		Detail:     it.ModelUsed,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("interpretation", "failed to publish audit message", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func toInterpretationResponse(it *entity.Interpretation) *dto.InterpretationResponse {
	return &dto.InterpretationResponse{
		Id:             it.Id,
		FileId:         it.FileId,
		CurvesAnalyzed: it.CurvesAnalyzed,
		StartDepth:     it.StartDepth,
		EndDepth:       it.EndDepth,
		Interpretation: it.Text,
		ModelUsed:      it.ModelUsed,
		CreatedAt:      it.CreatedAt,
	}
}
