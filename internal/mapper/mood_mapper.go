package mapper

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/model"
)

type MoodMapper struct{}

func NewMoodMapper() *MoodMapper {
	return &MoodMapper{}
}

func (m *MoodMapper) ToEntity(e *model.Mood) *entity.MoodEntry {
	if e == nil {
		return nil
	}
	return &entity.MoodEntry{
		Id:        e.Id,
		UserId:    e.UserId,
		Mood:      entity.MoodType(e.Mood),
		Value:     e.Value,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MoodMapper) ToEntities(moods []*model.Mood) []*entity.MoodEntry {
	entities := make([]*entity.MoodEntry, len(moods))
	for i, e := range moods {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *MoodMapper) ToModel(e *entity.MoodEntry) *model.Mood {
	if e == nil {
		return nil
	}
	return &model.Mood{
		Id:        e.Id,
		UserId:    e.UserId,
		Mood:      string(e.Mood),
		Value:     e.Value,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MoodMapper) ToResponse(e *entity.MoodEntry) *dto.MoodResponse {
	return &dto.MoodResponse{
		Id:        e.Id,
		UserId:    e.UserId,
		Mood:      string(e.Mood),
		Value:     e.Value,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func (m *MoodMapper) ToResponses(moods []*entity.MoodEntry) []*dto.MoodResponse {
	res := make([]*dto.MoodResponse, len(moods))
	for i, e := range moods {
		res[i] = m.ToResponse(e)
	}
	return res
}
