package contract

import (
	"context"

	"mindfulme-be/internal/entity"
)

type ChatHistoryRepository interface {
	FindByUser(ctx context.Context, userId int64) (*entity.ChatHistory, error)
	// Upsert replaces the user's messages, creating the history when absent.
	Upsert(ctx context.Context, userId int64, messages []entity.ChatMessage) (*entity.ChatHistory, error)
	// Append adds messages to the user's history in one step, creating it when absent.
	Append(ctx context.Context, userId int64, messages ...entity.ChatMessage) (*entity.ChatHistory, error)
}
