package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/internal/repository/memory"
	"mindfulme-be/internal/repository/unitofwork"
	"mindfulme-be/pkg/events"
	"mindfulme-be/pkg/llm"

	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

type scriptedCompanion struct {
	reply   string
	history []llm.Message
}

func (c *scriptedCompanion) Reply(ctx context.Context, history []llm.Message, message string) string {
	c.history = history
	return c.reply
}

type testEnv struct {
	store     *memory.Store
	factory   unitofwork.RepositoryFactory
	publisher *recordingPublisher
	logger    logger.ILogger
	now       time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	store := memory.NewStore(memory.WithClock(func() time.Time { return now }))
	return &testEnv{
		store:     store,
		factory:   unitofwork.NewMemoryRepositoryFactory(store),
		publisher: &recordingPublisher{},
		logger:    logger.NewNopLogger(),
		now:       now,
	}
}

// seeded loads the demo fixtures, so user 1 is alex.
func (e *testEnv) seeded(t *testing.T) *testEnv {
	t.Helper()
	done, err := NewSeedService(e.factory, e.logger, func() time.Time { return e.now }).Seed(context.Background())
	require.NoError(t, err)
	require.True(t, done)
	return e
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
