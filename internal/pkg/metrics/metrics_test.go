package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/api/users/:id", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/users/:id", "200"))

	for _, id := range []string{"1", "2"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/users/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/users/:id", "200"))
	assert.Equal(t, before+2, after)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "mindfulme_http_requests_total")
}

func TestRecordEvent(t *testing.T) {
	before := testutil.ToFloat64(domainEvents.WithLabelValues("mood.logged"))
	RecordEvent("mood.logged")
	assert.Equal(t, before+1, testutil.ToFloat64(domainEvents.WithLabelValues("mood.logged")))
}
