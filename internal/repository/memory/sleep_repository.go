package memory

import (
	"context"
	"sort"

	"mindfulme-be/internal/entity"
)

type sleepRepository struct {
	s *Store
}

func cloneSleep(e *entity.SleepEntry) *entity.SleepEntry {
	out := *e
	out.Note = copyString(e.Note)
	if e.Quality != nil {
		q := *e.Quality
		out.Quality = &q
	}
	return &out
}

func (r *sleepRepository) Create(ctx context.Context, sleep *entity.SleepEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sleep.Id = r.s.currentSleepId
	r.s.currentSleepId++
	sleep.CreatedAt = r.s.stamp(sleep.CreatedAt)

	r.s.sleepRecords[sleep.Id] = cloneSleep(sleep)
	return nil
}

func (r *sleepRepository) FindAllByUser(ctx context.Context, userId int64, limit int) ([]*entity.SleepEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*entity.SleepEntry, 0)
	for _, e := range r.s.sleepRecords {
		if e.UserId == userId {
			result = append(result, cloneSleep(e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return newestFirst(result[i].Id, result[j].Id, result[i].CreatedAt, result[j].CreatedAt)
	})
	return truncate(result, limit), nil
}
