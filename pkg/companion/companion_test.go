package companion

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindfulme-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply string
	err   error
	delay time.Duration
	calls int
	last  []llm.Message
	opts  []llm.Option
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	s.calls++
	s.last = history
	s.opts = opts
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return s.reply, s.err
}

func TestFallbackReply_KeywordTable(t *testing.T) {
	cases := map[string]string{
		"Work has me so STRESSED":    fallbackRules[0].reply,
		"I'm worried about tomorrow": fallbackRules[0].reply,
		"feeling a bit down":         fallbackRules[1].reply,
		"I can't sleep":              fallbackRules[2].reply,
		"how do I meditate?":         fallbackRules[3].reply,
		"hello there":                defaultReply,
		"stressed and can't sleep":   fallbackRules[0].reply,
	}
	for message, want := range cases {
		assert.Equal(t, want, FallbackReply(message), message)
	}
}

func TestReply_NoProviderUsesFallback(t *testing.T) {
	var sources []string
	c := New(nil, WithObserver(func(source string, _ error) { sources = append(sources, source) }))

	reply := c.Reply(context.Background(), nil, "I feel anxious")

	assert.Contains(t, reply, "feeling stressed")
	assert.Equal(t, []string{SourceFallback}, sources)
}

func TestReply_ProviderSuccessAppendsUserTurn(t *testing.T) {
	p := &stubProvider{reply: "Let's breathe together."}
	c := New(p)

	history := []llm.Message{{Role: "system", Content: "Hi, how can I help?"}}
	reply := c.Reply(context.Background(), history, "I'm overwhelmed")

	assert.Equal(t, "Let's breathe together.", reply)
	require.Len(t, p.last, 2)
	assert.Equal(t, llm.Message{Role: "user", Content: "I'm overwhelmed"}, p.last[1])
}

func TestReply_ProviderErrorFallsBack(t *testing.T) {
	c := New(&stubProvider{err: errors.New("boom")})
	assert.Equal(t, defaultReply, c.Reply(context.Background(), nil, "hello"))
}

func TestReply_EmptyReplyFallsBack(t *testing.T) {
	c := New(&stubProvider{reply: "  "})
	assert.Equal(t, defaultReply, c.Reply(context.Background(), nil, "hello"))
}

func TestReply_TimeoutFallsBack(t *testing.T) {
	c := New(&stubProvider{reply: "late", delay: time.Second}, WithTimeout(20*time.Millisecond))
	assert.Equal(t, fallbackRules[2].reply, c.Reply(context.Background(), nil, "so tired"))
}

func TestReply_RateLimitedFallsBack(t *testing.T) {
	p := &stubProvider{reply: "from model"}
	var reasons []error
	c := New(p, WithRatePerMinute(1), WithObserver(func(_ string, err error) { reasons = append(reasons, err) }))

	assert.Equal(t, "from model", c.Reply(context.Background(), nil, "hi"))
	assert.Equal(t, defaultReply, c.Reply(context.Background(), nil, "hi"))
	assert.Equal(t, 1, p.calls)
	require.Len(t, reasons, 2)
	assert.ErrorIs(t, reasons[1], errRateLimited)
}

func TestReply_ForwardsChatOptions(t *testing.T) {
	p := &stubProvider{reply: "ok"}
	c := New(p, WithChatOptions(llm.WithTemperature(0.3), llm.WithMaxTokens(128)))

	c.Reply(context.Background(), nil, "hi")

	require.Len(t, p.opts, 2)
	var applied llm.Options
	for _, opt := range p.opts {
		opt(&applied)
	}
	assert.Equal(t, 0.3, applied.Temperature)
	assert.Equal(t, 128, applied.MaxTokens)
}
