package dto

import (
	"time"

	"github.com/google/uuid"
)

type FileResponse struct {
	Id              uuid.UUID `json:"id"`
	Filename        string    `json:"filename"`
	FileURL         string    `json:"file_url"`
	UploadDate      time.Time `json:"upload_date"`
	FileSize        int64     `json:"file_size"`
	WellName        string    `json:"well_name"`
	FieldName       string    `json:"field_name"`
	Company         string    `json:"company"`
	Date            string    `json:"date"`
	StartDepth      float64   `json:"start_depth"`
	StopDepth       float64   `json:"stop_depth"`
	Step            float64   `json:"step"`
	DepthUnit       string    `json:"depth_unit"`
	AvailableCurves []string  `json:"available_curves"`
}

type UploadFileResponse struct {
	Message string        `json:"message"`
	File    *FileResponse `json:"file"`
}

type GetFilesResponse struct {
	Files []*FileResponse `json:"files"`
}

type GetFileResponse struct {
	File *FileResponse `json:"file"`
}

type DeleteFileResponse struct {
	Ok bool `json:"ok"`
}

type CurveResponse struct {
	Id               uuid.UUID `json:"id"`
	FileId           uuid.UUID `json:"file_id"`
	CurveName        string    `json:"curve_name"`
	CurveUnit        string    `json:"curve_unit"`
	CurveDescription string    `json:"curve_description"`
	SampleCount      int       `json:"sample_count"`
	MinValue         *float64  `json:"min_value"`
	MaxValue         *float64  `json:"max_value"`
	MeanValue        *float64  `json:"mean_value"`
}

type GetCurvesResponse struct {
	Curves []*CurveResponse `json:"curves"`
}

type DepthRangeResponse struct {
	StartDepth float64 `json:"start_depth"`
	StopDepth  float64 `json:"stop_depth"`
	Step       float64 `json:"step"`
	DepthUnit  string  `json:"depth_unit"`
}
