package unitofwork

import (
	"context"

	"mindfulme-be/internal/repository/contract"
	"mindfulme-be/internal/repository/memory"
)

// MemoryRepositoryFactory hands out units of work over a single in-process Store.
type MemoryRepositoryFactory struct {
	store *memory.Store
}

func NewMemoryRepositoryFactory(store *memory.Store) RepositoryFactory {
	return &MemoryRepositoryFactory{
		store: store,
	}
}

func (f *MemoryRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &memoryUnitOfWork{store: f.store}
}

// memoryUnitOfWork has no transactions; every Store call is already atomic.
type memoryUnitOfWork struct {
	store *memory.Store
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) UserRepository() contract.UserRepository {
	return u.store.Users()
}

func (u *memoryUnitOfWork) MoodRepository() contract.MoodRepository {
	return u.store.Moods()
}

func (u *memoryUnitOfWork) SleepRepository() contract.SleepRepository {
	return u.store.Sleep()
}

func (u *memoryUnitOfWork) MeditationRepository() contract.MeditationRepository {
	return u.store.Meditations()
}

func (u *memoryUnitOfWork) CommunityPostRepository() contract.CommunityPostRepository {
	return u.store.CommunityPosts()
}

func (u *memoryUnitOfWork) CalmingSoundRepository() contract.CalmingSoundRepository {
	return u.store.CalmingSounds()
}

func (u *memoryUnitOfWork) ChatHistoryRepository() contract.ChatHistoryRepository {
	return u.store.ChatHistories()
}
