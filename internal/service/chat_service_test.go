package service

import (
	"context"
	"errors"
	"testing"

	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/pkg/companion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_GetHistory(t *testing.T) {
	env := newTestEnv(t).seeded(t)
	svc := NewChatService(env.factory, companion.New(nil), env.publisher, env.logger)

	history, err := svc.GetHistory(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 3)
	assert.Equal(t, "system", history.Messages[0].Role)

	_, err = NewUserService(env.factory, nil, env.logger).Create(context.Background(), &dto.CreateUserRequest{
		Username: "bob", Password: "pw", Name: "Bob", Email: "bob@example.com",
	})
	require.NoError(t, err)

	_, err = svc.GetHistory(context.Background(), 2)
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "No chat history found", appErr.Message)
}

func TestChatService_SaveHistoryReplacesMessagesKeepingId(t *testing.T) {
	env := newTestEnv(t).seeded(t)
	svc := NewChatService(env.factory, companion.New(nil), env.publisher, env.logger)

	before, err := svc.GetHistory(context.Background(), 1)
	require.NoError(t, err)

	saved, err := svc.SaveHistory(context.Background(), &dto.SaveChatHistoryRequest{
		UserId:   1,
		Messages: []dto.ChatMessageDto{{Role: "user", Content: "Starting over"}},
	})
	require.NoError(t, err)
	assert.Equal(t, before.Id, saved.Id)
	assert.Equal(t, before.CreatedAt, saved.CreatedAt)
	assert.Len(t, saved.Messages, 1)
}

func TestChatService_AiChatAppendsBothTurns(t *testing.T) {
	env := newTestEnv(t).seeded(t)
	comp := &scriptedCompanion{reply: "Let's try box breathing."}
	svc := NewChatService(env.factory, comp, env.publisher, env.logger)

	res, err := svc.AiChat(context.Background(), &dto.AiChatRequest{Message: "Work is a lot", UserId: 1})
	require.NoError(t, err)
	assert.Equal(t, "Let's try box breathing.", res.Response)
	assert.Len(t, comp.history, 3)

	history, err := env.store.ChatHistories().FindByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, history.Messages, 5)
	assert.Equal(t, entity.ChatMessage{Role: "user", Content: "Work is a lot"}, history.Messages[3])
	assert.Equal(t, entity.ChatMessage{Role: "system", Content: "Let's try box breathing."}, history.Messages[4])
}

func TestChatService_AiChatCreatesHistoryWithFallback(t *testing.T) {
	env := newTestEnv(t).seeded(t)
	_, err := NewUserService(env.factory, nil, env.logger).Create(context.Background(), &dto.CreateUserRequest{
		Username: "bob", Password: "pw", Name: "Bob", Email: "bob@example.com",
	})
	require.NoError(t, err)
	svc := NewChatService(env.factory, companion.New(nil), env.publisher, env.logger)

	res, err := svc.AiChat(context.Background(), &dto.AiChatRequest{Message: "I can't sleep", UserId: 2})
	require.NoError(t, err)
	assert.Equal(t, companion.FallbackReply("I can't sleep"), res.Response)

	history, err := svc.GetHistory(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, history.Messages, 2)
}

func TestChatService_AiChatValidation(t *testing.T) {
	env := newTestEnv(t).seeded(t)
	svc := NewChatService(env.factory, companion.New(nil), env.publisher, env.logger)

	var appErr *serverutils.AppError

	_, err := svc.AiChat(context.Background(), &dto.AiChatRequest{Message: "", UserId: 1})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Message and userId are required", appErr.Message)

	_, err = svc.AiChat(context.Background(), &dto.AiChatRequest{Message: "hi", UserId: 99})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
}
