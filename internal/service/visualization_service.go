package service

import (
	"context"
	"encoding/json"
	"math"

	"welllog-ai-be/internal/dto"
	"welllog-ai-be/internal/pkg/logger"
	"welllog-ai-be/internal/repository/cache"
)

type IVisualizationService interface {
	BuildVisualization(ctx context.Context, req *dto.VisualizeRequest) (*dto.VisualizeResponse, error)
}

type visualizationService struct {
	curveData ICurveDataService
	vizCache  *cache.VisualizationCache
	log       logger.ILogger
}

func NewVisualizationService(
	curveData ICurveDataService,
	vizCache *cache.VisualizationCache,
	log logger.ILogger,
) IVisualizationService {
	return &visualizationService{
		curveData: curveData,
		vizCache:  vizCache,
		log:       log,
	}
}

func (s *visualizationService) BuildVisualization(ctx context.Context, req *dto.VisualizeRequest) (*dto.VisualizeResponse, error) {
	// Missing bounds widen to the file's own range via clamping.
	start := math.Inf(-1)
	if req.StartDepth != nil {
		start = *req.StartDepth
	}
	end := math.Inf(1)
	if req.EndDepth != nil {
		end = *req.EndDepth
	}

	key := s.vizCache.Key(req.FileId.String(), req.Curves, start, end)
	if payload, ok := s.vizCache.Get(ctx, key); ok {
		var cached dto.VisualizeResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	file, extracted, err := s.curveData.Extract(ctx, req.FileId, req.Curves, start, end)
	if err != nil {
		return nil, err
	}

	response := &dto.VisualizeResponse{
		FileInfo: dto.VisualizationFileInfo{
			Filename:   file.Filename,
			WellName:   file.WellName,
			StartDepth: file.StartDepth,
			StopDepth:  file.StopDepth,
			DepthUnit:  file.DepthUnit,
		},
		Curves: make([]*dto.VisualizationCurve, len(extracted)),
	}

	for i, ex := range extracted {
		response.Curves[i] = &dto.VisualizationCurve{
			Name:        ex.Curve.Name,
			Unit:        ex.Curve.Unit,
			Description: ex.Curve.Description,
			Depths:      ex.Depths,
			Values:      ex.Values,
			Statistics: dto.CurveStatistics{
				Min:  ex.Curve.MinValue,
				Max:  ex.Curve.MaxValue,
				Mean: ex.Curve.MeanValue,
			},
		}
	}

	if payload, err := json.Marshal(response); err == nil {
		s.vizCache.Set(ctx, key, payload)
	}

	return response, nil
}
