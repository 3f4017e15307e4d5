package server

import (
	"context"
	"log"
	"strings"

	"mindfulme-be/internal/bootstrap"
	"mindfulme-be/internal/config"
	"mindfulme-be/internal/pkg/metrics"
	"mindfulme-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "mindfulme",
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ErrorHandler: serverutils.ErrorHandler(container.Logger),
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	origins := cfg.App.CorsAllowedOrigins
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		// fiber rejects credentials combined with a wildcard origin
		AllowCredentials: !strings.Contains(origins, "*"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Idempotency-Key",
		AllowMethods:     "GET, POST, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Idempotent-Replay, X-Request-ID",
	}))

	if cfg.Otel.Enabled {
		app.Use(otelfiber.Middleware())
	}

	app.Use(metrics.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	app.Get("/metrics", metrics.Handler())

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	api.Use(serverutils.IdempotencyMiddleware(c.IdempotencyRepository))

	c.AuthController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)
	c.MoodController.RegisterRoutes(api)
	c.SleepController.RegisterRoutes(api)
	c.MeditationController.RegisterRoutes(api)
	c.CalmingSoundController.RegisterRoutes(api)
	c.CommunityController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)

	c.CommunityFeedHandler.RegisterRoutes(api)
}
