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

type SleepRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SleepMapper
}

func NewSleepRepository(db *gorm.DB) contract.SleepRepository {
	return &SleepRepositoryImpl{
		db:     db,
		mapper: mapper.NewSleepMapper(),
	}
}

func (r *SleepRepositoryImpl) Create(ctx context.Context, sleep *entity.SleepEntry) error {
	m := r.mapper.ToModel(sleep)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*sleep = *r.mapper.ToEntity(m)
	return nil
}

func (r *SleepRepositoryImpl) FindAllByUser(ctx context.Context, userId int64, limit int) ([]*entity.SleepEntry, error) {
	var records []*model.Sleep
	query := applySpecifications(r.db.WithContext(ctx),
		specification.UserOwnedBy{UserID: userId},
		specification.NewestFirst{},
		specification.Limit{Limit: limit},
	)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(records), nil
}
