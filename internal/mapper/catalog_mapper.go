package mapper

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/model"
)

// CatalogMapper covers the two seeded catalogs: meditations and calming sounds.
type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) MeditationToEntity(e *model.Meditation) *entity.Meditation {
	if e == nil {
		return nil
	}
	return &entity.Meditation{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Duration:    e.Duration,
		Type:        entity.MeditationType(e.Type),
	}
}

func (m *CatalogMapper) MeditationToModel(e *entity.Meditation) *model.Meditation {
	return &model.Meditation{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Duration:    e.Duration,
		Type:        string(e.Type),
	}
}

func (m *CatalogMapper) MeditationToResponse(e *entity.Meditation) *dto.MeditationResponse {
	return &dto.MeditationResponse{
		Id:          e.Id,
		Title:       e.Title,
		Description: e.Description,
		Duration:    e.Duration,
		Type:        string(e.Type),
	}
}

func (m *CatalogMapper) SoundToEntity(s *model.CalmingSound) *entity.CalmingSound {
	if s == nil {
		return nil
	}
	return &entity.CalmingSound{
		Id:          s.Id,
		Title:       s.Title,
		Description: s.Description,
		Category:    entity.SoundCategory(s.Category),
		Duration:    s.Duration,
		AudioUrl:    s.AudioUrl,
	}
}

func (m *CatalogMapper) SoundToModel(s *entity.CalmingSound) *model.CalmingSound {
	return &model.CalmingSound{
		Id:          s.Id,
		Title:       s.Title,
		Description: s.Description,
		Category:    string(s.Category),
		Duration:    s.Duration,
		AudioUrl:    s.AudioUrl,
	}
}

func (m *CatalogMapper) SoundToResponse(s *entity.CalmingSound) *dto.CalmingSoundResponse {
	return &dto.CalmingSoundResponse{
		Id:          s.Id,
		Title:       s.Title,
		Description: s.Description,
		Category:    string(s.Category),
		Duration:    s.Duration,
		AudioUrl:    s.AudioUrl,
	}
}
