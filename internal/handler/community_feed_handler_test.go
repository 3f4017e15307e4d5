package handler

import (
	"net/http/httptest"
	"testing"

	"mindfulme-be/internal/pkg/logger"
	internalWS "mindfulme-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeWs_RequiresUpgrade(t *testing.T) {
	app := fiber.New()
	h := NewCommunityFeedHandler(internalWS.NewHub(nil, logger.NewNopLogger()), logger.NewNopLogger())
	h.RegisterRoutes(app.Group("/api"))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/community/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
