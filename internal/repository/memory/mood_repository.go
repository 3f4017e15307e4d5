package memory

import (
	"context"
	"sort"

	"mindfulme-be/internal/entity"
)

type moodRepository struct {
	s *Store
}

func cloneMood(m *entity.MoodEntry) *entity.MoodEntry {
	out := *m
	out.Note = copyString(m.Note)
	return &out
}

func (r *moodRepository) Create(ctx context.Context, mood *entity.MoodEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	mood.Id = r.s.currentMoodId
	r.s.currentMoodId++
	mood.CreatedAt = r.s.stamp(mood.CreatedAt)

	r.s.moods[mood.Id] = cloneMood(mood)
	return nil
}

func (r *moodRepository) FindAllByUser(ctx context.Context, userId int64, limit int) ([]*entity.MoodEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := make([]*entity.MoodEntry, 0)
	for _, mood := range r.s.moods {
		if mood.UserId == userId {
			result = append(result, cloneMood(mood))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return newestFirst(result[i].Id, result[j].Id, result[i].CreatedAt, result[j].CreatedAt)
	})
	return truncate(result, limit), nil
}
