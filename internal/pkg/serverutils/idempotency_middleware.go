package serverutils

import (
	"mindfulme-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

const (
	IdempotencyKeyHeader   = "Idempotency-Key"
	IdempotentReplayHeader = "Idempotent-Replay"
)

// ReplayStore is satisfied by the in-memory idempotency repository.
type ReplayStore interface {
	Save(response *store.ReplayedResponse)
	Get(key string) (*store.ReplayedResponse, bool)
}

// IdempotencyMiddleware replays the first successful response for a POST
// carrying the same Idempotency-Key on the same path.
func IdempotencyMiddleware(replays ReplayStore) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		key := ctx.Get(IdempotencyKeyHeader)
		if ctx.Method() != fiber.MethodPost || key == "" {
			return ctx.Next()
		}

		cacheKey := ctx.Method() + " " + ctx.Path() + " " + key
		if cached, ok := replays.Get(cacheKey); ok {
			ctx.Set(IdempotentReplayHeader, "true")
			if cached.ContentType != "" {
				ctx.Set(fiber.HeaderContentType, cached.ContentType)
			}
			return ctx.Status(cached.StatusCode).Send(cached.Body)
		}

		if err := ctx.Next(); err != nil {
			return err
		}

		status := ctx.Response().StatusCode()
		if status >= 200 && status < 300 {
			replays.Save(&store.ReplayedResponse{
				Key:         cacheKey,
				StatusCode:  status,
				ContentType: string(ctx.Response().Header.ContentType()),
				Body:        append([]byte(nil), ctx.Response().Body()...),
			})
		}
		return nil
	}
}
