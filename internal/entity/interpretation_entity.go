package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interpretation is one AI-generated narrative over a depth window and curve
// subset. Immutable once created; removed only via file cascade.
type Interpretation struct {
	Id             uuid.UUID
	FileId         uuid.UUID
	CurvesAnalyzed []string // caller order, matches evidence-summary order
	StartDepth     float64
	EndDepth       float64
	Text           string
	ModelUsed      string
	CreatedAt      time.Time
}
