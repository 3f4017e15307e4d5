package companion

import (
	"context"
	"strings"
	"time"

	"mindfulme-be/pkg/llm"

	"golang.org/x/time/rate"
)

const (
	SourceProvider = "provider"
	SourceFallback = "fallback"
)

// Companion produces the AI chat reply. Reply never fails: any provider
// problem degrades to FallbackReply.
type Companion struct {
	provider llm.LLMProvider
	limiter  *rate.Limiter
	timeout  time.Duration
	observe  func(source string, err error)
	chatOpts []llm.Option
}

type Option func(*Companion)

func WithTimeout(d time.Duration) Option {
	return func(c *Companion) {
		c.timeout = d
	}
}

// WithRatePerMinute caps outbound provider calls. Zero or less disables the cap.
func WithRatePerMinute(n int) Option {
	return func(c *Companion) {
		if n <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(n)), n)
	}
}

// WithObserver is told where each reply came from and, for fallbacks, why.
func WithObserver(fn func(source string, err error)) Option {
	return func(c *Companion) {
		c.observe = fn
	}
}

// WithChatOptions are passed to every provider call.
func WithChatOptions(opts ...llm.Option) Option {
	return func(c *Companion) {
		c.chatOpts = append(c.chatOpts, opts...)
	}
}

// New accepts a nil provider, in which case every reply is a fallback.
func New(provider llm.LLMProvider, opts ...Option) *Companion {
	c := &Companion{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Inf, 0),
		timeout:  15 * time.Second,
		observe:  func(string, error) {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Companion) Reply(ctx context.Context, history []llm.Message, message string) string {
	if c.provider == nil {
		c.observe(SourceFallback, nil)
		return FallbackReply(message)
	}
	if !c.limiter.Allow() {
		c.observe(SourceFallback, errRateLimited)
		return FallbackReply(message)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conversation := make([]llm.Message, 0, len(history)+1)
	conversation = append(conversation, history...)
	conversation = append(conversation, llm.Message{Role: "user", Content: message})

	reply, err := c.provider.Chat(ctx, conversation, c.chatOpts...)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errEmptyReply
	}
	if err != nil {
		c.observe(SourceFallback, err)
		return FallbackReply(message)
	}

	c.observe(SourceProvider, nil)
	return reply
}
