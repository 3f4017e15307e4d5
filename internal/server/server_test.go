package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"mindfulme-be/internal/bootstrap"
	"mindfulme-be/internal/config"
	"mindfulme-be/internal/dto"
	"mindfulme-be/internal/pkg/serverutils"
	"mindfulme-be/pkg/companion"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			LogFilePath:        filepath.Join(t.TempDir(), "app.log"),
			CorsAllowedOrigins: "*",
			IdempotencyTTL:     time.Minute,
		},
		Database: config.DatabaseConfig{Driver: "memory"},
		Keys:     config.APIKeys{JwtSecret: "test-secret"},
		Ai: config.AIConfig{
			LLMProvider:      "none",
			LLMTimeout:       time.Second,
			LLMRatePerMinute: 60,
		},
	}

	container, err := bootstrap.NewContainer(cfg, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		container.Close()
	})
	require.NoError(t, container.Start(ctx))

	return New(cfg, container).GetApp()
}

func do(t *testing.T, app *fiber.App, method, path string, body interface{}, headers ...string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func errorBody(t *testing.T, raw []byte) serverutils.BaseResponse[any] {
	return decode[serverutils.BaseResponse[any]](t, raw)
}

func TestNewUserLogsFirstMood(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/users", map[string]interface{}{
		"username": "bob", "password": "x", "name": "Bob", "email": "b@x.com",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	user := decode[dto.UserResponse](t, body)
	assert.Equal(t, int64(2), user.Id)
	assert.NotContains(t, string(body), "password")

	resp, body = do(t, app, http.MethodPost, "/api/moods", map[string]interface{}{
		"userId": 2, "mood": "happy", "value": 90,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	mood := decode[dto.MoodResponse](t, body)
	assert.Equal(t, int64(2), mood.UserId)
	assert.Equal(t, 90, mood.Value)

	resp, body = do(t, app, http.MethodGet, "/api/users/2/moods", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	moods := decode[[]dto.MoodResponse](t, body)
	require.Len(t, moods, 1)
	assert.Equal(t, mood.Id, moods[0].Id)

	resp, body = do(t, app, http.MethodGet, "/api/users/2/sleep", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	app := newTestApp(t)
	payload := map[string]interface{}{"username": "bob", "password": "x", "name": "Bob", "email": "b@x.com"}

	resp, _ := do(t, app, http.MethodPost, "/api/users", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := do(t, app, http.MethodPost, "/api/users", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Username already exists", errorBody(t, body).Message)
}

func TestReadById_Errors(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/api/users/abc", http.StatusBadRequest, "Invalid user ID"},
		{"/api/users/42", http.StatusNotFound, "User not found"},
		{"/api/meditations/xyz", http.StatusBadRequest, "Invalid meditation ID"},
		{"/api/meditations/9", http.StatusNotFound, "Meditation not found"},
		{"/api/calming-sounds/x1", http.StatusBadRequest, "Invalid sound ID"},
		{"/api/calming-sounds/99", http.StatusNotFound, "Sound not found"},
		{"/api/users/abc/moods", http.StatusBadRequest, "Invalid user ID"},
		{"/api/users/42/sleep", http.StatusNotFound, "User not found"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, body := do(t, app, http.MethodGet, tc.path, nil)
			assert.Equal(t, tc.status, resp.StatusCode, string(body))
			res := errorBody(t, body)
			assert.False(t, res.Success)
			assert.Equal(t, tc.message, res.Message)
		})
	}
}

func TestMoodList_LimitAndOrder(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/users/1/moods?limit=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	moods := decode[[]dto.MoodResponse](t, body)
	require.Len(t, moods, 3)
	for i := 1; i < len(moods); i++ {
		assert.False(t, moods[i].CreatedAt.After(moods[i-1].CreatedAt))
	}

	for _, q := range []string{"", "?limit=0", "?limit=-2", "?limit=abc"} {
		_, body = do(t, app, http.MethodGet, "/api/users/1/moods"+q, nil)
		assert.Len(t, decode[[]dto.MoodResponse](t, body), 7, q)
	}
}

func TestCreateMood_Validation(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/moods", map[string]interface{}{
		"userId": 1, "mood": "ecstatic", "value": 150,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	res := errorBody(t, body)
	assert.Equal(t, "Validation failed", res.Message)

	fields := make([]string, 0, len(res.Errors))
	for _, fe := range res.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"mood", "value"}, fields)

	resp, body = do(t, app, http.MethodPost, "/api/moods", `{"userId": 1, "mood":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", errorBody(t, body).Message)

	resp, body = do(t, app, http.MethodPost, "/api/sleep", map[string]interface{}{"userId": 77, "hours": 8})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User not found", errorBody(t, body).Message)
}

func TestCatalogs(t *testing.T) {
	app := newTestApp(t)

	_, body := do(t, app, http.MethodGet, "/api/meditations", nil)
	assert.Len(t, decode[[]dto.MeditationResponse](t, body), 3)

	_, body = do(t, app, http.MethodGet, "/api/calming-sounds", nil)
	sounds := decode[[]dto.CalmingSoundResponse](t, body)
	require.Len(t, sounds, 4)
	assert.Equal(t, "Ocean Waves", sounds[0].Title)
	assert.NotEmpty(t, sounds[0].AudioUrl)
}

func TestChatHistory_UpsertUsesPathUser(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/users/1/chat-history", map[string]interface{}{
		"userId":   99,
		"messages": []map[string]string{{"role": "user", "content": "hello"}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	history := decode[dto.ChatHistoryResponse](t, body)
	assert.Equal(t, int64(1), history.UserId)
	assert.Equal(t, int64(1), history.Id)
	assert.Len(t, history.Messages, 1)

	resp, body = do(t, app, http.MethodPost, "/api/users/1/chat-history", map[string]interface{}{
		"messages": []map[string]string{{"role": "assistant", "content": "hi"}},
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	res := errorBody(t, body)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "messages[0].role", res.Errors[0].Field)
}

func TestAiChat_FallsBackWithoutProvider(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/ai-chat", map[string]interface{}{
		"message": "I feel so stressed", "userId": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	reply := decode[dto.AiChatResponse](t, body)
	assert.Equal(t, companion.FallbackReply("I feel so stressed"), reply.Response)

	_, body = do(t, app, http.MethodGet, "/api/users/1/chat-history", nil)
	history := decode[dto.ChatHistoryResponse](t, body)
	require.Len(t, history.Messages, 5)
	assert.Equal(t, "system", history.Messages[4].Role)

	resp, body = do(t, app, http.MethodPost, "/api/ai-chat", map[string]interface{}{"message": "hi"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Message and userId are required", errorBody(t, body).Message)
}

func TestCommunity_IdempotentCreateAndLike(t *testing.T) {
	app := newTestApp(t)
	payload := map[string]interface{}{"userId": 1, "content": "Morning walk helped."}

	resp, first := do(t, app, http.MethodPost, "/api/community/posts", payload, "Idempotency-Key", "abc-123")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(first))
	assert.Empty(t, resp.Header.Get(serverutils.IdempotentReplayHeader))

	resp, second := do(t, app, http.MethodPost, "/api/community/posts", payload, "Idempotency-Key", "abc-123")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get(serverutils.IdempotentReplayHeader))
	assert.Equal(t, decode[dto.CommunityPostResponse](t, first).Id, decode[dto.CommunityPostResponse](t, second).Id)

	_, body := do(t, app, http.MethodGet, "/api/community/posts", nil)
	posts := decode[[]dto.CommunityPostResponse](t, body)
	require.Len(t, posts, 3)
	assert.Equal(t, "Morning walk helped.", posts[0].Content)
	assert.Zero(t, posts[0].Likes)

	resp, body = do(t, app, http.MethodPost, "/api/community/posts/1/like", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 25, decode[dto.CommunityPostResponse](t, body).Likes)

	_, body = do(t, app, http.MethodGet, "/api/community/posts?limit=2", nil)
	posts = decode[[]dto.CommunityPostResponse](t, body)
	require.Len(t, posts, 2)
	assert.Equal(t, 25, posts[1].Likes)

	resp, body = do(t, app, http.MethodPost, "/api/community/posts/50/like", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post not found", errorBody(t, body).Message)
}

func TestAuth_LoginAndMe(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/api/auth/login", map[string]string{"username": "alex", "password": "password123"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	login := decode[dto.LoginResponse](t, body)
	require.NotEmpty(t, login.Token)

	resp, body = do(t, app, http.MethodGet, "/api/auth/me", nil, "Authorization", "Bearer "+login.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "alex", decode[dto.UserResponse](t, body).Username)

	resp, _ = do(t, app, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = do(t, app, http.MethodPost, "/api/auth/login", map[string]string{"username": "alex", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid username or password", errorBody(t, body).Message)
}

func TestHealthMetricsAndUnknownRoute(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	resp, body = do(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "mindfulme_http_requests_total")

	resp, body = do(t, app, http.MethodGet, "/api/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, errorBody(t, body).Success)
}
