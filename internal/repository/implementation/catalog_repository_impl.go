package implementation

import (
	"context"
	"errors"

	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/mapper"
	"mindfulme-be/internal/model"
	"mindfulme-be/internal/repository/contract"
	"mindfulme-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MeditationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewMeditationRepository(db *gorm.DB) contract.MeditationRepository {
	return &MeditationRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *MeditationRepositoryImpl) Create(ctx context.Context, meditation *entity.Meditation) error {
	m := r.mapper.MeditationToModel(meditation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	meditation.Id = m.Id
	return nil
}

func (r *MeditationRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Meditation, error) {
	var rows []*model.Meditation
	query := applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "id"})
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Meditation, len(rows))
	for i, row := range rows {
		out[i] = r.mapper.MeditationToEntity(row)
	}
	return out, nil
}

func (r *MeditationRepositoryImpl) FindById(ctx context.Context, id int64) (*entity.Meditation, error) {
	var row model.Meditation
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MeditationToEntity(&row), nil
}

type CalmingSoundRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCalmingSoundRepository(db *gorm.DB) contract.CalmingSoundRepository {
	return &CalmingSoundRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CalmingSoundRepositoryImpl) Create(ctx context.Context, sound *entity.CalmingSound) error {
	m := r.mapper.SoundToModel(sound)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	sound.Id = m.Id
	return nil
}

func (r *CalmingSoundRepositoryImpl) FindAll(ctx context.Context) ([]*entity.CalmingSound, error) {
	var rows []*model.CalmingSound
	query := applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "id"})
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.CalmingSound, len(rows))
	for i, row := range rows {
		out[i] = r.mapper.SoundToEntity(row)
	}
	return out, nil
}

func (r *CalmingSoundRepositoryImpl) FindById(ctx context.Context, id int64) (*entity.CalmingSound, error) {
	var row model.CalmingSound
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SoundToEntity(&row), nil
}
