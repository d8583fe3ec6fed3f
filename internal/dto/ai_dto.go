package dto

import (
	"time"

	"github.com/google/uuid"
)

type InterpretRequest struct {
	FileId uuid.UUID `json:"file_id" validate:"required"`
	Curves []string  `json:"curves" validate:"required,min=1,dive,required"`
	// Pointers so zero-depth bounds still pass required validation.
	StartDepth *float64 `json:"start_depth" validate:"required"`
	EndDepth   *float64 `json:"end_depth" validate:"required"`
}

type InterpretationResponse struct {
	Id             uuid.UUID `json:"id"`
	FileId         uuid.UUID `json:"file_id"`
	CurvesAnalyzed []string  `json:"curves_analyzed"`
	StartDepth     float64   `json:"start_depth"`
	EndDepth       float64   `json:"end_depth"`
	Interpretation string    `json:"interpretation"`
	ModelUsed      string    `json:"model_used"`
	CreatedAt      time.Time `json:"created_at"`
}

type InterpretResponse struct {
	Interpretation *InterpretationResponse `json:"interpretation"`
}

type GetInterpretationsResponse struct {
	Interpretations []*InterpretationResponse `json:"interpretations"`
}

type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	FileId              uuid.UUID  `json:"file_id" validate:"required"`
	Message             string     `json:"message" validate:"required"`
	ConversationHistory []ChatTurn `json:"conversation_history" validate:"dive"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
