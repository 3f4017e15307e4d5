package service

import (
	"context"
	"errors"
	"testing"

	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityService_CreateStartsAtZero(t *testing.T) {
	env := newTestEnv(t).seeded(t)
	svc := NewCommunityService(env.factory, env.publisher, env.logger)

	post, err := svc.Create(context.Background(), &dto.CreateCommunityPostRequest{UserId: 1, Content: "Walked by the lake today."})
	require.NoError(t, err)
	assert.Equal(t, int64(3), post.Id)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.Comments)
	assert.Equal(t, []string{events.TypeCommunityPostCreated}, env.publisher.types())

	list, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].Id)
	assert.Equal(t, int64(1), list[1].Id) // 2h ago beats 5h ago
	assert.Equal(t, int64(2), list[2].Id)
}

func TestCommunityService_Like(t *testing.T) {
	env := newTestEnv(t).seeded(t)
	svc := NewCommunityService(env.factory, env.publisher, env.logger)

	post, err := svc.Like(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 25, post.Likes)

	_, err = svc.Like(context.Background(), 77)
	var appErr *serverutils.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Post not found", appErr.Message)
}
