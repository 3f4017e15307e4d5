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

type CommunityPostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommunityPostMapper
}

func NewCommunityPostRepository(db *gorm.DB) contract.CommunityPostRepository {
	return &CommunityPostRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommunityPostMapper(),
	}
}

func (r *CommunityPostRepositoryImpl) Create(ctx context.Context, post *entity.CommunityPost) error {
	m := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(m)
	return nil
}

func (r *CommunityPostRepositoryImpl) FindAll(ctx context.Context, limit int) ([]*entity.CommunityPost, error) {
	var posts []*model.CommunityPost
	query := applySpecifications(r.db.WithContext(ctx),
		specification.NewestFirst{},
		specification.Limit{Limit: limit},
	)
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(posts), nil
}

func (r *CommunityPostRepositoryImpl) FindById(ctx context.Context, id int64) (*entity.CommunityPost, error) {
	var post model.CommunityPost
	query := applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&post), nil
}

func (r *CommunityPostRepositoryImpl) IncrementLikes(ctx context.Context, id int64) (*entity.CommunityPost, error) {
	result := r.db.WithContext(ctx).Model(&model.CommunityPost{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindById(ctx, id)
}
