package mapper

import (
	"encoding/json"

	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/model"
)

type InterpretationMapper struct{}

func NewInterpretationMapper() *InterpretationMapper {
	return &InterpretationMapper{}
}

func (m *InterpretationMapper) ToEntity(it *model.Interpretation) *entity.Interpretation {
	if it == nil {
		return nil
	}

	curves := make([]string, 0)
	if len(it.CurvesAnalyzed) > 0 {
		_ = json.Unmarshal(it.CurvesAnalyzed, &curves)
	}

	return &entity.Interpretation{
		Id:             it.Id,
		FileId:         it.FileId,
		CurvesAnalyzed: curves,
		StartDepth:     it.StartDepth,
		EndDepth:       it.EndDepth,
		Text:           it.Text,
		ModelUsed:      it.ModelUsed,
		CreatedAt:      it.CreatedAt,
	}
}

func (m *InterpretationMapper) ToModel(it *entity.Interpretation) *model.Interpretation {
	if it == nil {
		return nil
	}

	curves, _ := json.Marshal(it.CurvesAnalyzed)

	return &model.Interpretation{
		Id:             it.Id,
		FileId:         it.FileId,
		CurvesAnalyzed: curves,
		StartDepth:     it.StartDepth,
		EndDepth:       it.EndDepth,
		Text:           it.Text,
		ModelUsed:      it.ModelUsed,
		CreatedAt:      it.CreatedAt,
	}
}

func (m *InterpretationMapper) ToEntities(items []*model.Interpretation) []*entity.Interpretation {
	entities := make([]*entity.Interpretation, len(items))
	for i, it := range items {
		entities[i] = m.ToEntity(it)
	}
	return entities
}
