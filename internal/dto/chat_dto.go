package dto

import "time"

type ChatMessageDto struct {
	Role    string `json:"role" validate:"required,oneof=user system"`
	Content string `json:"content" validate:"required"`
}

// SaveChatHistoryRequest takes UserId from the path, never from the body.
type SaveChatHistoryRequest struct {
	UserId   int64            `json:"-"`
	Messages []ChatMessageDto `json:"messages" validate:"required,dive"`
}

type ChatHistoryResponse struct {
	Id        int64            `json:"id"`
	UserId    int64            `json:"userId"`
	Messages  []ChatMessageDto `json:"messages"`
	CreatedAt time.Time        `json:"createdAt"`
}

type AiChatRequest struct {
	Message string `json:"message"`
	UserId  int64  `json:"userId"`
}

type AiChatResponse struct {
	Response string `json:"response"`
}
