package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/repository/contract"
	"mindfulme-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) StoreOption {
	return WithClock(func() time.Time { return t })
}

func TestUserRepository_SequentialIdsAndUniqueUsername(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Users()

	alex := &entity.User{Username: "alex", Name: "Alex"}
	bob := &entity.User{Username: "bob", Name: "Bob"}
	require.NoError(t, repo.Create(ctx, alex))
	require.NoError(t, repo.Create(ctx, bob))
	assert.Equal(t, int64(1), alex.Id)
	assert.Equal(t, int64(2), bob.Id)
	assert.False(t, alex.CreatedAt.IsZero())

	err := repo.Create(ctx, &entity.User{Username: "alex"})
	assert.ErrorIs(t, err, contract.ErrDuplicateKey)

	// A failed insert does not consume an id.
	carol := &entity.User{Username: "carol"}
	require.NoError(t, repo.Create(ctx, carol))
	assert.Equal(t, int64(3), carol.Id)

	found, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.Name)

	missing, err := repo.FindById(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()

	u := &entity.User{Username: "alex", Name: "Alex"}
	require.NoError(t, repo.Create(ctx, u))
	u.Name = "changed after insert"

	got, _ := repo.FindById(ctx, u.Id)
	got.Name = "changed after read"

	again, _ := repo.FindById(ctx, u.Id)
	assert.Equal(t, "Alex", again.Name)
}

func TestMoodRepository_NewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(fixedClock(base))
	repo := s.Moods()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &entity.MoodEntry{
			UserId:    1,
			Mood:      entity.MoodCalm,
			Value:     i * 10,
			CreatedAt: base.AddDate(0, 0, -i),
		}))
	}
	require.NoError(t, repo.Create(ctx, &entity.MoodEntry{UserId: 2, Mood: entity.MoodSad}))

	all, err := repo.FindAllByUser(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].CreatedAt.After(all[i].CreatedAt))
	}

	limited, err := repo.FindAllByUser(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, limited, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{limited[0].Id, limited[1].Id, limited[2].Id})

	none, err := repo.FindAllByUser(ctx, 3, 0)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCommunityPostRepository_IncrementLikes(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().CommunityPosts()

	post := &entity.CommunityPost{UserId: 1, Content: "hello", Likes: 2}
	require.NoError(t, repo.Create(ctx, post))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.IncrementLikes(ctx, post.Id)
		}()
	}
	wg.Wait()

	got, err := repo.FindById(ctx, post.Id)
	require.NoError(t, err)
	assert.Equal(t, 22, got.Likes)

	missing, err := repo.IncrementLikes(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChatHistoryRepository_UpsertKeepsIdentity(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC)
	repo := NewStore(fixedClock(base)).ChatHistories()

	first, err := repo.Upsert(ctx, 1, []entity.ChatMessage{{Role: "user", Content: "a"}})
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, 1, []entity.ChatMessage{{Role: "user", Content: "b"}, {Role: "system", Content: "c"}})
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, base, second.CreatedAt)
	assert.Len(t, second.Messages, 2)

	other, err := repo.Append(ctx, 2, entity.ChatMessage{Role: "user", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, first.Id+1, other.Id)

	appended, err := repo.Append(ctx, 1, entity.ChatMessage{Role: "user", Content: "d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, []string{appended.Messages[0].Content, appended.Messages[1].Content, appended.Messages[2].Content})

	// Mutating a returned history must not leak into the store.
	appended.Messages[0].Content = "mutated"
	stored, _ := repo.FindByUser(ctx, 1)
	assert.Equal(t, "b", stored.Messages[0].Content)
}

func TestCatalogRepositories_OrderedById(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, title := range []string{"One", "Two", "Three"} {
		require.NoError(t, s.Meditations().Create(ctx, &entity.Meditation{Title: title}))
		require.NoError(t, s.CalmingSounds().Create(ctx, &entity.CalmingSound{Title: title}))
	}

	meditations, err := s.Meditations().FindAll(ctx)
	require.NoError(t, err)
	sounds, err := s.CalmingSounds().FindAll(ctx)
	require.NoError(t, err)

	for i, want := range []string{"One", "Two", "Three"} {
		assert.Equal(t, int64(i+1), meditations[i].Id)
		assert.Equal(t, want, meditations[i].Title)
		assert.Equal(t, want, sounds[i].Title)
	}
}

func TestIdempotencyRepository(t *testing.T) {
	repo := NewIdempotencyRepository(time.Minute)

	_, ok := repo.Get("k")
	assert.False(t, ok)

	repo.Save(&store.ReplayedResponse{Key: "k", StatusCode: 201, Body: []byte(`{"id":1}`)})
	got, ok := repo.Get("k")
	require.True(t, ok)
	assert.Equal(t, 201, got.StatusCode)

	repo.Delete("k")
	_, ok = repo.Get("k")
	assert.False(t, ok)
}
