package memory

import (
	"sort"
	"sync"
	"time"

	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/repository/contract"
)

// Store owns every entity collection and id counter for the process lifetime.
// Records are copied on the way in and out so callers never share memory with it.
type Store struct {
	mu sync.RWMutex

	users          map[int64]*entity.User
	usernames      map[string]int64
	moods          map[int64]*entity.MoodEntry
	sleepRecords   map[int64]*entity.SleepEntry
	meditations    map[int64]*entity.Meditation
	communityPosts map[int64]*entity.CommunityPost
	calmingSounds  map[int64]*entity.CalmingSound
	chatHistories  map[int64]*entity.ChatHistory // keyed by user id

	currentUserId        int64
	currentMoodId        int64
	currentSleepId       int64
	currentMeditationId  int64
	currentPostId        int64
	currentSoundId       int64
	currentChatHistoryId int64

	now func() time.Time
}

type StoreOption func(*Store)

// WithClock overrides the time source used to stamp CreatedAt.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		users:          make(map[int64]*entity.User),
		usernames:      make(map[string]int64),
		moods:          make(map[int64]*entity.MoodEntry),
		sleepRecords:   make(map[int64]*entity.SleepEntry),
		meditations:    make(map[int64]*entity.Meditation),
		communityPosts: make(map[int64]*entity.CommunityPost),
		calmingSounds:  make(map[int64]*entity.CalmingSound),
		chatHistories:  make(map[int64]*entity.ChatHistory),

		currentUserId:        1,
		currentMoodId:        1,
		currentSleepId:       1,
		currentMeditationId:  1,
		currentPostId:        1,
		currentSoundId:       1,
		currentChatHistoryId: 1,

		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Users() contract.UserRepository                   { return &userRepository{s: s} }
func (s *Store) Moods() contract.MoodRepository                   { return &moodRepository{s: s} }
func (s *Store) Sleep() contract.SleepRepository                  { return &sleepRepository{s: s} }
func (s *Store) Meditations() contract.MeditationRepository       { return &meditationRepository{s: s} }
func (s *Store) CommunityPosts() contract.CommunityPostRepository { return &communityPostRepository{s: s} }
func (s *Store) CalmingSounds() contract.CalmingSoundRepository   { return &calmingSoundRepository{s: s} }
func (s *Store) ChatHistories() contract.ChatHistoryRepository    { return &chatHistoryRepository{s: s} }

// stamp returns t, or the store clock when t is zero. Fixtures pass explicit times.
func (s *Store) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return s.now()
	}
	return t
}

func newestFirst(ai, aj int64, ti, tj time.Time) bool {
	if ti.Equal(tj) {
		return ai > aj
	}
	return ti.After(tj)
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func sortById[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
