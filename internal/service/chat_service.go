package service

import (
	"context"
	"strings"
	"time"

	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/pkg/apperrors"
	"welllog-ai-be/internal/pkg/logger"
	"welllog-ai-be/internal/repository/memory"
	"welllog-ai-be/internal/repository/specification"
	"welllog-ai-be/internal/repository/unitofwork"
	"welllog-ai-be/pkg/llm"
	"welllog-ai-be/pkg/prompt"

	"github.com/google/uuid"
)

// IChatService answers follow-up questions about one file. Stateless per
// call; the caller supplies the conversation history each turn.
type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	uowFactory        unitofwork.RepositoryFactory
	groundingRepo     *memory.GroundingRepository
	llmProvider       llm.LLMProvider
	generationTimeout time.Duration
	log               logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	groundingRepo *memory.GroundingRepository,
	llmProvider llm.LLMProvider,
	generationTimeout time.Duration,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:        uowFactory,
		groundingRepo:     groundingRepo,
		llmProvider:       llmProvider,
		generationTimeout: generationTimeout,
		log:               log,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	grounding, err := s.grounding(ctx, req.FileId)
	if err != nil {
		return nil, err
	}

	history := make([]llm.Message, 0, len(req.ConversationHistory)+2)
	history = append(history, llm.Message{
		Role:    "system",
		Content: prompt.NewChatBuilder(*grounding).Build(),
	})
	for _, turn := range req.ConversationHistory {
		history = append(history, llm.Message{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	history = append(history, llm.Message{
		Role:    "user",
		Content: req.Message,
	})

	genCtx, cancel := context.WithTimeout(ctx, s.generationTimeout)
	defer cancel()

	reply, err := s.llmProvider.Chat(genCtx, history)
	if err != nil {
		return nil, apperrors.Generation("chat generation failed", err)
	}
	if strings.TrimSpace(reply) == "" {
		return nil, apperrors.Generation("model returned empty reply", nil)
	}

	return &dto.ChatResponse{
		Response:  reply,
		Timestamp: time.Now(),
	}, nil
}

// grounding loads the per-file snapshot, serving repeats from the in-memory
// cache until the entry expires or the file is deleted.
func (s *chatService) grounding(ctx context.Context, fileId uuid.UUID) (*prompt.ChatGrounding, error) {
	if cached, ok := s.groundingRepo.Get(fileId.String()); ok {
		return cached, nil
	}

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

	names := make([]string, len(curves))
	units := make([]string, len(curves))
	for i, c := range curves {
		names[i] = c.Name
		units[i] = c.Unit
	}

	grounding := &prompt.ChatGrounding{
		Well: prompt.WellContext{
			WellName:   file.WellName,
			FieldName:  file.FieldName,
			Company:    file.Company,
			DepthUnit:  file.DepthUnit,
			StartDepth: file.StartDepth,
			EndDepth:   file.StopDepth,
		},
		Filename:   file.Filename,
		CurveNames: names,
		CurveUnits: units,
	}
	s.groundingRepo.Save(fileId.String(), grounding)
	return grounding, nil
}
