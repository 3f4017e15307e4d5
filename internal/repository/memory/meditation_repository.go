package memory

import (
	"context"

	"mindfulme-be/internal/entity"
)

type meditationRepository struct {
	s *Store
}

func (r *meditationRepository) Create(ctx context.Context, meditation *entity.Meditation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	meditation.Id = r.s.currentMeditationId
	r.s.currentMeditationId++

	stored := *meditation
	r.s.meditations[meditation.Id] = &stored
	return nil
}

func (r *meditationRepository) FindAll(ctx context.Context) ([]*entity.Meditation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*entity.Meditation, 0, len(r.s.meditations))
	for _, m := range r.s.meditations {
		out := *m
		result = append(result, &out)
	}
	sortById(result, func(m *entity.Meditation) int64 { return m.Id })
	return result, nil
}

func (r *meditationRepository) FindById(ctx context.Context, id int64) (*entity.Meditation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.meditations[id]
	if !ok {
		return nil, nil
	}
	out := *m
	return &out, nil
}
