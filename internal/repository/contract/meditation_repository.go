package contract

import (
	"context"

	"mindfulme-be/internal/entity"
)

type MeditationRepository interface {
	Create(ctx context.Context, meditation *entity.Meditation) error
	FindAll(ctx context.Context) ([]*entity.Meditation, error)
	FindById(ctx context.Context, id int64) (*entity.Meditation, error)
}
