package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"mindfulme-be/internal/config"
	"mindfulme-be/internal/controller"
	"mindfulme-be/internal/handler"
	"mindfulme-be/internal/pkg/logger"
	"mindfulme-be/internal/pkg/mailer"
	"mindfulme-be/internal/pkg/metrics"
	"mindfulme-be/internal/repository/memory"
	"mindfulme-be/internal/repository/unitofwork"
	"mindfulme-be/internal/service"
	"mindfulme-be/internal/websocket"
	"mindfulme-be/pkg/companion"
	"mindfulme-be/pkg/llm"
	"mindfulme-be/pkg/llm/factory"

	pktNats "mindfulme-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	Logger logger.ILogger

	// Controllers
	UserController         controller.IUserController
	AuthController         controller.IAuthController
	MoodController         controller.IMoodController
	SleepController        controller.ISleepController
	MeditationController   controller.IMeditationController
	CalmingSoundController controller.ICalmingSoundController
	CommunityController    controller.ICommunityController
	ChatController         controller.IChatController

	// WebSockets
	CommunityFeedHandler *handler.CommunityFeedHandler
	WebSocketHub         *websocket.Hub

	// Background Services (started by Start)
	ConsumerService service.IConsumerService
	SeedService     service.ISeedService

	IdempotencyRepository *memory.IdempotencyRepository

	closers []func()
}

// NewContainer wires every dependency. db is only used when the postgres
// driver is selected; pass nil for the in-memory store.
func NewContainer(cfg *config.Config, db *gorm.DB) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	c := &Container{Logger: sysLogger}

	var uowFactory unitofwork.RepositoryFactory
	switch cfg.Database.Driver {
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("storage driver postgres requires a database connection")
		}
		uowFactory = unitofwork.NewRepositoryFactory(db)
	case "memory", "":
		uowFactory = unitofwork.NewMemoryRepositoryFactory(memory.NewStore())
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Database.Driver)
	}
	sysLogger.Info("BOOTSTRAP", "Storage ready", map[string]interface{}{"driver": cfg.Database.Driver})

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.SenderName,
		)
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var sink service.EventSink
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			sysLogger.Warn("BOOTSTRAP", "NATS unavailable, events stay in-process", map[string]interface{}{"error": err.Error()})
		} else {
			sink = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Infrastructure
	rdb := connectRedis(cfg.App.RedisURL, sysLogger)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	wsLogger := logger.NewIsolatedLogger(filepath.Join(filepath.Dir(cfg.App.LogFilePath), "community_feed.log"))
	c.WebSocketHub = websocket.NewHub(rdb, wsLogger)
	c.CommunityFeedHandler = handler.NewCommunityFeedHandler(c.WebSocketHub, wsLogger)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		return nil, err
	}
	if llmProvider == nil {
		sysLogger.Warn("BOOTSTRAP", "No LLM provider configured, companion uses local replies", map[string]interface{}{"provider": cfg.Ai.LLMProvider})
	} else {
		sysLogger.Info("BOOTSTRAP", "LLM provider ready", map[string]interface{}{"provider": cfg.Ai.LLMProvider, "model": cfg.Ai.LLMModel})
	}

	chatCompanion := companion.New(llmProvider,
		companion.WithTimeout(cfg.Ai.LLMTimeout),
		companion.WithRatePerMinute(cfg.Ai.LLMRatePerMinute),
		companion.WithChatOptions(
			llm.WithTemperature(cfg.Ai.LLMTemperature),
			llm.WithMaxTokens(cfg.Ai.LLMMaxTokens),
		),
		companion.WithObserver(func(source string, err error) {
			metrics.RecordCompanionReply(source)
			if err != nil {
				sysLogger.Warn("COMPANION", "Provider reply unavailable, using fallback", map[string]interface{}{"error": err.Error()})
			}
		}),
	)

	// 4. Services
	publisherService := service.NewPublisherService(service.EventsTopic, pubSub, sink, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, service.EventsTopic, emailService, c.WebSocketHub, sysLogger)
	c.SeedService = service.NewSeedService(uowFactory, sysLogger, nil)

	userService := service.NewUserService(uowFactory, publisherService, sysLogger)
	authService := service.NewAuthService(uowFactory, cfg.Keys.JwtSecret)
	moodService := service.NewMoodService(uowFactory, publisherService, sysLogger)
	sleepService := service.NewSleepService(uowFactory, publisherService, sysLogger)
	meditationService := service.NewMeditationService(uowFactory)
	calmingSoundService := service.NewCalmingSoundService(uowFactory)
	communityService := service.NewCommunityService(uowFactory, publisherService, sysLogger)
	chatService := service.NewChatService(uowFactory, chatCompanion, publisherService, sysLogger)

	c.IdempotencyRepository = memory.NewIdempotencyRepository(cfg.App.IdempotencyTTL)

	// 5. Controllers
	c.UserController = controller.NewUserController(userService)
	c.AuthController = controller.NewAuthController(authService, userService, cfg.Keys.JwtSecret)
	c.MoodController = controller.NewMoodController(moodService)
	c.SleepController = controller.NewSleepController(sleepService)
	c.MeditationController = controller.NewMeditationController(meditationService)
	c.CalmingSoundController = controller.NewCalmingSoundController(calmingSoundService)
	c.CommunityController = controller.NewCommunityController(communityService)
	c.ChatController = controller.NewChatController(chatService)

	return c, nil
}

// Start seeds the fixtures and launches the background workers. They stop when ctx is cancelled.
func (c *Container) Start(ctx context.Context) error {
	seeded, err := c.SeedService.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed fixtures: %w", err)
	}
	if !seeded {
		c.Logger.Info("BOOTSTRAP", "Users already present, fixtures skipped", nil)
	}

	go c.WebSocketHub.Run(ctx)

	if err := c.ConsumerService.Consume(ctx); err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	return nil
}

// Close releases external connections in reverse order of creation.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func connectRedis(url string, log logger.ILogger) *redis.Client {
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("BOOTSTRAP", "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: url}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("BOOTSTRAP", "Redis unavailable, community feed stays local", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return nil
	}
	return rdb
}
