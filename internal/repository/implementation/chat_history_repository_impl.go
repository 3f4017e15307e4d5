package implementation

import (
	"context"
	"errors"

	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/mapper"
	"mindfulme-be/internal/model"
	"mindfulme-be/internal/repository/contract"
	"mindfulme-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatHistoryRepository(db *gorm.DB) contract.ChatHistoryRepository {
	return &ChatHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatHistoryRepositoryImpl) FindByUser(ctx context.Context, userId int64) (*entity.ChatHistory, error) {
	var history model.ChatHistory
	query := applySpecifications(r.db.WithContext(ctx), specification.UserOwnedBy{UserID: userId})
	if err := query.First(&history).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&history), nil
}

func (r *ChatHistoryRepositoryImpl) Upsert(ctx context.Context, userId int64, messages []entity.ChatMessage) (*entity.ChatHistory, error) {
	return r.mutate(ctx, userId, func(current []entity.ChatMessage) []entity.ChatMessage {
		return messages
	})
}

func (r *ChatHistoryRepositoryImpl) Append(ctx context.Context, userId int64, messages ...entity.ChatMessage) (*entity.ChatHistory, error) {
	return r.mutate(ctx, userId, func(current []entity.ChatMessage) []entity.ChatMessage {
		return append(current, messages...)
	})
}

// mutate locks the user's history row for the duration of the change.
func (r *ChatHistoryRepositoryImpl) mutate(ctx context.Context, userId int64, apply func([]entity.ChatMessage) []entity.ChatMessage) (*entity.ChatHistory, error) {
	var result *entity.ChatHistory
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var history model.ChatHistory
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userId).
			First(&history).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			history = model.ChatHistory{
				UserId:   userId,
				Messages: r.mapper.MessagesToModel(apply(nil)),
			}
			if err := tx.Create(&history).Error; err != nil {
				return translateError(err)
			}
		case err != nil:
			return err
		default:
			current := r.mapper.ToEntity(&history).Messages
			history.Messages = r.mapper.MessagesToModel(apply(current))
			if err := tx.Model(&history).Update("messages", history.Messages).Error; err != nil {
				return err
			}
		}
		result = r.mapper.ToEntity(&history)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
