package mapper

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/model"
)

type SleepMapper struct{}

func NewSleepMapper() *SleepMapper {
	return &SleepMapper{}
}

func (m *SleepMapper) ToEntity(s *model.Sleep) *entity.SleepEntry {
	if s == nil {
		return nil
	}
	var quality *entity.SleepQuality
	if s.Quality != nil {
		q := entity.SleepQuality(*s.Quality)
		quality = &q
	}
	return &entity.SleepEntry{
		Id:        s.Id,
		UserId:    s.UserId,
		Hours:     s.Hours,
		Quality:   quality,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SleepMapper) ToEntities(records []*model.Sleep) []*entity.SleepEntry {
	entities := make([]*entity.SleepEntry, len(records))
	for i, s := range records {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

func (m *SleepMapper) ToModel(s *entity.SleepEntry) *model.Sleep {
	if s == nil {
		return nil
	}
	return &model.Sleep{
		Id:        s.Id,
		UserId:    s.UserId,
		Hours:     s.Hours,
		Quality:   qualityString(s.Quality),
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SleepMapper) ToResponse(s *entity.SleepEntry) *dto.SleepResponse {
	return &dto.SleepResponse{
		Id:        s.Id,
		UserId:    s.UserId,
		Hours:     s.Hours,
		Quality:   qualityString(s.Quality),
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

func (m *SleepMapper) ToResponses(records []*entity.SleepEntry) []*dto.SleepResponse {
	res := make([]*dto.SleepResponse, len(records))
	for i, s := range records {
		res[i] = m.ToResponse(s)
	}
	return res
}

func qualityString(q *entity.SleepQuality) *string {
	if q == nil {
		return nil
	}
	s := string(*q)
	return &s
}
