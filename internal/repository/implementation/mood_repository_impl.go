package implementation

import (
	"context"

	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/mapper"
	"mindfulme-be/internal/model"
	"mindfulme-be/internal/repository/contract"
	"mindfulme-be/internal/repository/specification"

	"gorm.io/gorm"
)

type MoodRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MoodMapper
}

func NewMoodRepository(db *gorm.DB) contract.MoodRepository {
	return &MoodRepositoryImpl{
		db:     db,
		mapper: mapper.NewMoodMapper(),
	}
}

func (r *MoodRepositoryImpl) Create(ctx context.Context, mood *entity.MoodEntry) error {
	m := r.mapper.ToModel(mood)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*mood = *r.mapper.ToEntity(m)
	return nil
}

func (r *MoodRepositoryImpl) FindAllByUser(ctx context.Context, userId int64, limit int) ([]*entity.MoodEntry, error) {
	var moods []*model.Mood
	query := applySpecifications(r.db.WithContext(ctx),
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
		specification.Limit{Limit: limit},
	)
	if err := query.Find(&moods).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(moods), nil
}
