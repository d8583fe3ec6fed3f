package mapper

import (
	"encoding/json"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/model"
)

type CurveMapper struct{}

func NewCurveMapper() *CurveMapper {
	return &CurveMapper{}
}

func (m *CurveMapper) ToEntity(c *model.Curve) *entity.Curve {
	if c == nil {
		return nil
	}

	var depths []float64
	if len(c.Depths) > 0 {
		_ = json.Unmarshal(c.Depths, &depths)
	}

	var values []float64
	if len(c.Values) > 0 {
		_ = json.Unmarshal(c.Values, &values)
	}

	return &entity.Curve{
		Id:          c.Id,
		FileId:      c.FileId,
		Name:        c.Name,
		Unit:        c.Unit,
		Description: c.Description,
		Position:    c.Position,
		Depths:      depths,
		Values:      values,
		SampleCount: c.SampleCount,
		MinValue:    c.MinValue,
		MaxValue:    c.MaxValue,
		MeanValue:   c.MeanValue,
	}
}

func (m *CurveMapper) ToModel(c *entity.Curve) *model.Curve {
	if c == nil {
		return nil
	}

	depths, _ := json.Marshal(c.Depths)
	values, _ := json.Marshal(c.Values)

	return &model.Curve{
		Id:          c.Id,
		FileId:      c.FileId,
		Name:        c.Name,
		Unit:        c.Unit,
		Description: c.Description,
		Position:    c.Position,
		Depths:      depths,
		Values:      values,
		SampleCount: c.SampleCount,
		MinValue:    c.MinValue,
		MaxValue:    c.MaxValue,
		MeanValue:   c.MeanValue,
	}
}

func (m *CurveMapper) ToEntities(curves []*model.Curve) []*entity.Curve {
	entities := make([]*entity.Curve, len(curves))
	for i, c := range curves {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
