package contract

import (
	"context"

	"mindfulme-be/internal/entity"
)

type SleepRepository interface {
	Create(ctx context.Context, sleep *entity.SleepEntry) error
	// FindAllByUser returns newest first; limit <= 0 means no limit.
	FindAllByUser(ctx context.Context, userId int64, limit int) ([]*entity.SleepEntry, error)
}
