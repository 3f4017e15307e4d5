package unitofwork

import (
	"context"

	"mindfulme-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MoodRepository() contract.MoodRepository
	SleepRepository() contract.SleepRepository
	MeditationRepository() contract.MeditationRepository
	CommunityPostRepository() contract.CommunityPostRepository
	CalmingSoundRepository() contract.CalmingSoundRepository
	ChatHistoryRepository() contract.ChatHistoryRepository
}
