package contract

import (
	"context"

	"mindfulme-be/internal/entity"
)

type CalmingSoundRepository interface {
	Create(ctx context.Context, sound *entity.CalmingSound) error
	FindAll(ctx context.Context) ([]*entity.CalmingSound, error)
	FindById(ctx context.Context, id int64) (*entity.CalmingSound, error)
}
