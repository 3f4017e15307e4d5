package memory

import (
	"context"

	"mindfulme-be/internal/entity"
)

type calmingSoundRepository struct {
	s *Store
}

func (r *calmingSoundRepository) Create(ctx context.Context, sound *entity.CalmingSound) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sound.Id = r.s.currentSoundId
	r.s.currentSoundId++

	stored := *sound
	r.s.calmingSounds[sound.Id] = &stored
	return nil
}

func (r *calmingSoundRepository) FindAll(ctx context.Context) ([]*entity.CalmingSound, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*entity.CalmingSound, 0, len(r.s.calmingSounds))
	for _, sound := range r.s.calmingSounds {
		out := *sound
		result = append(result, &out)
	}
	sortById(result, func(s *entity.CalmingSound) int64 { return s.Id })
	return result, nil
}

func (r *calmingSoundRepository) FindById(ctx context.Context, id int64) (*entity.CalmingSound, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sound, ok := r.s.calmingSounds[id]
	if !ok {
		return nil, nil
	}
	out := *sound
	return &out, nil
}
