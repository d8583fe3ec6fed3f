package entity

import (
	"time"

	"github.com/google/uuid"
)

// WellFile is one ingested LAS file. Immutable after creation; removed only
// by explicit delete, which cascades to curves and interpretations.
type WellFile struct {
	Id         uuid.UUID
	Filename   string
	StorageKey string
	FileURL    string
	FileSize   int64

	WellName  string
	FieldName string
	Company   string
	LogDate   string

	StartDepth float64
	StopDepth  float64
	DepthStep  float64
	DepthUnit  string
	NullValue  float64

	CreatedAt time.Time
}

// ClampWindow narrows a requested depth window to the file's bounds.
func (f *WellFile) ClampWindow(start, end float64) (float64, float64) {
	if start < f.StartDepth {
		start = f.StartDepth
	}
	if end > f.StopDepth {
		end = f.StopDepth
	}
	return start, end
}
