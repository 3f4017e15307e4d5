package mapper

import (
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(h *model.ChatHistory) *entity.ChatHistory {
	if h == nil {
		return nil
	}
	messages := make([]entity.ChatMessage, len(h.Messages))
	for i, msg := range h.Messages {
		messages[i] = entity.ChatMessage{Role: msg.Role, Content: msg.Content}
	}
	return &entity.ChatHistory{
		Id:        h.Id,
		UserId:    h.UserId,
		Messages:  messages,
		CreatedAt: h.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToModel(messages []entity.ChatMessage) datatypes.JSONSlice[model.ChatMessage] {
	out := make([]model.ChatMessage, len(messages))
	for i, msg := range messages {
		out[i] = model.ChatMessage{Role: msg.Role, Content: msg.Content}
	}
	return datatypes.NewJSONSlice(out)
}

func (m *ChatMapper) MessagesFromRequest(messages []dto.ChatMessageDto) []entity.ChatMessage {
	out := make([]entity.ChatMessage, len(messages))
	for i, msg := range messages {
		out[i] = entity.ChatMessage{Role: msg.Role, Content: msg.Content}
	}
	return out
}

func (m *ChatMapper) ToResponse(h *entity.ChatHistory) *dto.ChatHistoryResponse {
	messages := make([]dto.ChatMessageDto, len(h.Messages))
	for i, msg := range h.Messages {
		messages[i] = dto.ChatMessageDto{Role: msg.Role, Content: msg.Content}
	}
	return &dto.ChatHistoryResponse{
		Id:        h.Id,
		UserId:    h.UserId,
		Messages:  messages,
		CreatedAt: h.CreatedAt,
	}
}
