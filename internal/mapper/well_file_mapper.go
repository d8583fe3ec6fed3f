package mapper

import (
	"welllog-ai-be/internal/entity"
	"welllog-ai-be/internal/model"
)

type WellFileMapper struct{}

func NewWellFileMapper() *WellFileMapper {
	return &WellFileMapper{}
}

func (m *WellFileMapper) ToEntity(f *model.WellFile) *entity.WellFile {
	if f == nil {
		return nil
	}
	return &entity.WellFile{
		Id:         f.Id,
		Filename:   f.Filename,
		StorageKey: f.StorageKey,
		FileURL:    f.FileURL,
		FileSize:   f.FileSize,
		WellName:   f.WellName,
		FieldName:  f.FieldName,
		Company:    f.Company,
		LogDate:    f.LogDate,
		StartDepth: f.StartDepth,
		StopDepth:  f.StopDepth,
		DepthStep:  f.DepthStep,
		DepthUnit:  f.DepthUnit,
		NullValue:  f.NullValue,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *WellFileMapper) ToModel(f *entity.WellFile) *model.WellFile {
	if f == nil {
		return nil
	}
	return &model.WellFile{
		Id:         f.Id,
		Filename:   f.Filename,
		StorageKey: f.StorageKey,
		FileURL:    f.FileURL,
		FileSize:   f.FileSize,
		WellName:   f.WellName,
		FieldName:  f.FieldName,
		Company:    f.Company,
		LogDate:    f.LogDate,
		StartDepth: f.StartDepth,
		StopDepth:  f.StopDepth,
		DepthStep:  f.DepthStep,
		DepthUnit:  f.DepthUnit,
		NullValue:  f.NullValue,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *WellFileMapper) ToEntities(files []*model.WellFile) []*entity.WellFile {
	entities := make([]*entity.WellFile, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
