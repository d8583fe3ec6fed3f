package dto

import (
	"github.com/google/uuid"
)

type VisualizeRequest struct {
	FileId uuid.UUID `json:"file_id" validate:"required"`
	Curves []string  `json:"curves" validate:"required,min=1,dive,required"`
	// Depth window is optional; a missing bound defaults to the file's own.
	StartDepth *float64 `json:"start_depth"`
	EndDepth   *float64 `json:"end_depth"`
}

type CurveStatistics struct {
	Min  *float64 `json:"min"`
	Max  *float64 `json:"max"`
	Mean *float64 `json:"mean"`
}

type VisualizationCurve struct {
	Name        string          `json:"name"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	Depths      []float64       `json:"depths"`
	Values      []float64       `json:"values"`
	Statistics  CurveStatistics `json:"statistics"`
}

type VisualizationFileInfo struct {
	Filename   string  `json:"filename"`
	WellName   string  `json:"well_name"`
	StartDepth float64 `json:"start_depth"`
	StopDepth  float64 `json:"stop_depth"`
	DepthUnit  string  `json:"depth_unit"`
}

type VisualizeResponse struct {
	FileInfo VisualizationFileInfo `json:"file_info"`
	Curves   []*VisualizationCurve `json:"curves"`
}
