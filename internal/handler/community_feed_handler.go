package handler

import (
	"mindfulme-be/internal/pkg/logger"
	internalWS "mindfulme-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// CommunityFeedHandler streams newly created community posts to browsers.
type CommunityFeedHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewCommunityFeedHandler(hub *internalWS.Hub, log logger.ILogger) *CommunityFeedHandler {
	return &CommunityFeedHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *CommunityFeedHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/community/ws", h.ServeWs)
}

func (h *CommunityFeedHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("CommunityFeed", "WebSocket session started", map[string]interface{}{"remote": conn.RemoteAddr().String()})
		internalWS.ServeWs(h.hub, conn)
		h.logger.Info("CommunityFeed", "WebSocket session ended", map[string]interface{}{"remote": conn.RemoteAddr().String()})
	})(c)
}
