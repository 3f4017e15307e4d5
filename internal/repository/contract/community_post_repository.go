package contract

import (
	"context"

	"mindfulme-be/internal/entity"
)

type CommunityPostRepository interface {
	Create(ctx context.Context, post *entity.CommunityPost) error
	// FindAll returns newest first; limit <= 0 means no limit.
	FindAll(ctx context.Context, limit int) ([]*entity.CommunityPost, error)
	FindById(ctx context.Context, id int64) (*entity.CommunityPost, error)
	// IncrementLikes returns nil when the post does not exist.
	IncrementLikes(ctx context.Context, id int64) (*entity.CommunityPost, error)
}
