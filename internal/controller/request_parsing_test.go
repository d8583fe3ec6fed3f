package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/pkg/logger"
	"welllog-ai-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = noopLogger{}

type stubVisualizationService struct{}

func (stubVisualizationService) BuildVisualization(ctx context.Context, req *dto.VisualizeRequest) (*dto.VisualizeResponse, error) {
	return &dto.VisualizeResponse{}, nil
}

type stubInterpretationService struct{}

func (stubInterpretationService) Interpret(ctx context.Context, req *dto.InterpretRequest) (*dto.InterpretResponse, error) {
	return &dto.InterpretResponse{}, nil
}

func (stubInterpretationService) ListInterpretations(ctx context.Context, fileId uuid.UUID) (*dto.GetInterpretationsResponse, error) {
	return &dto.GetInterpretationsResponse{}, nil
}

type stubChatService struct{}

func (stubChatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	return &dto.ChatResponse{}, nil
}

func newParsingTestApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware(noopLogger{}))
	api := app.Group("/api")
	NewVisualizationController(stubVisualizationService{}).RegisterRoutes(api)
	NewAiController(stubInterpretationService{}, stubChatService{}).RegisterRoutes(api)
	return app
}

func TestMalformedBodyIsValidationError(t *testing.T) {
	app := newParsingTestApp()

	for _, path := range []string{"/api/visualize", "/api/interpret", "/api/chat"} {
		req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader("{not json"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		res, err := app.Test(req)
		require.NoError(t, err, path)
		assert.Equal(t, fiber.StatusBadRequest, res.StatusCode, path)

		raw, err := io.ReadAll(res.Body)
		require.NoError(t, err, path)
		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body), path)
		assert.Equal(t, "validation_error", body["kind"], path)
		assert.Equal(t, "malformed request body", body["error"], path)
	}
}
