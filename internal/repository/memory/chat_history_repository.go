package memory

import (
	"context"

	"mindfulme-be/internal/entity"
)

type chatHistoryRepository struct {
	s *Store
}

func cloneHistory(h *entity.ChatHistory) *entity.ChatHistory {
	out := *h
	out.Messages = append(make([]entity.ChatMessage, 0, len(h.Messages)), h.Messages...)
	return &out
}

func (r *chatHistoryRepository) FindByUser(ctx context.Context, userId int64) (*entity.ChatHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	history, ok := r.s.chatHistories[userId]
	if !ok {
		return nil, nil
	}
	return cloneHistory(history), nil
}

func (r *chatHistoryRepository) Upsert(ctx context.Context, userId int64, messages []entity.ChatMessage) (*entity.ChatHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	history := r.getOrCreate(userId)
	history.Messages = append(make([]entity.ChatMessage, 0, len(messages)), messages...)
	return cloneHistory(history), nil
}

func (r *chatHistoryRepository) Append(ctx context.Context, userId int64, messages ...entity.ChatMessage) (*entity.ChatHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	history := r.getOrCreate(userId)
	history.Messages = append(history.Messages, messages...)
	return cloneHistory(history), nil
}

// getOrCreate must be called with the write lock held.
func (r *chatHistoryRepository) getOrCreate(userId int64) *entity.ChatHistory {
	if history, ok := r.s.chatHistories[userId]; ok {
		return history
	}
	history := &entity.ChatHistory{
		Id:        r.s.currentChatHistoryId,
		UserId:    userId,
		Messages:  make([]entity.ChatMessage, 0),
		CreatedAt: r.s.now(),
	}
	r.s.currentChatHistoryId++
	r.s.chatHistories[userId] = history
	return history
}
