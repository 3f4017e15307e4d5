package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mindfulme-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := NewHub(nil, logger.NewNopLogger())
	go h.Run(ctx)
	return h
}

func TestHub_PublishReachesRegisteredClients(t *testing.T) {
	h := startHub(t)

	a := &Client{Hub: h, ID: uuid.New(), Send: make(chan []byte, 1)}
	b := &Client{Hub: h, ID: uuid.New(), Send: make(chan []byte, 1)}
	h.register <- a
	h.register <- b
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, h.Publish(context.Background(), "community_post", map[string]interface{}{"id": 3}))

	for _, c := range []*Client{a, b} {
		select {
		case raw := <-c.Send:
			var msg struct {
				Type string                 `json:"type"`
				Data map[string]interface{} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(raw, &msg))
			assert.Equal(t, "community_post", msg.Type)
			assert.EqualValues(t, 3, msg.Data["id"])
		case <-time.After(time.Second):
			t.Fatal("client did not receive message")
		}
	}
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	h := startHub(t)

	slow := &Client{Hub: h, ID: uuid.New(), Send: make(chan []byte)} // unbuffered, never read
	h.register <- slow
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, h.Publish(context.Background(), "community_post", nil))

	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := startHub(t)

	c := &Client{Hub: h, ID: uuid.New(), Send: make(chan []byte, 1)}
	h.register <- c
	h.unregister <- c
	h.unregister <- c // second unregister is a no-op

	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.Send
	assert.False(t, open)
}
