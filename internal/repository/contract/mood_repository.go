package contract

import (
	"context"

	"mindfulme-be/internal/entity"
)

type MoodRepository interface {
	Create(ctx context.Context, mood *entity.MoodEntry) error
	// FindAllByUser returns newest first; limit <= 0 means no limit.
	FindAllByUser(ctx context.Context, userId int64, limit int) ([]*entity.MoodEntry, error)
}
