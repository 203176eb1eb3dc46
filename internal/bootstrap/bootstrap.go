package bootstrap

import (
	"context"
	"fmt"

	"marketing-server/internal/config"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"marketing-server/internal/auth/handler"
	"marketing-server/internal/auth/processor"
	kafkaClient "marketing-server/internal/clients/kafka"
	redisClient "marketing-server/internal/clients/redis"
	"marketing-server/internal/events"
	launchHandler "marketing-server/internal/launch/handler"
	launchProcessor "marketing-server/internal/launch/processor"
	"marketing-server/internal/ratelimit"
	"marketing-server/internal/schedule"
	"marketing-server/internal/session"
	sessionHandler "marketing-server/internal/session/handler"
	"marketing-server/internal/workflow"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler    handler.Handler
	LaunchHandler  launchHandler.Handler
	SessionHandler sessionHandler.Handler

	// Middleware
	LaunchRateLimiter *ratelimit.Service

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	RedisClient   *redisClient.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		deps.Cleanup()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	// Launch events are optional; without brokers the processor skips publishing
	var eventPublisher launchProcessor.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		}, logger)
		eventPublisher = events.NewPublisher(deps.KafkaProducer, logger)
	} else {
		logger.Info(ctx, "kafka brokers not configured, launch events disabled")
	}

	workflowClient := workflow.New(cfg.Services.WorkflowWebhookURL, logger)
	if !workflowClient.Enabled() {
		logger.Info(ctx, "workflow webhook not configured, launch notifications disabled")
	}

	// Initialize auth processor and handler
	authProc := processor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = handler.New(authProc, logger)

	// Initialize launch processor and handler
	launchProc := launchProcessor.New(
		launchProcessor.NewStoreAdapter(deps.Store),
		workflowClient,
		eventPublisher,
		logger,
		launchProcessor.Config{
			StepTimeout: cfg.Launch.StepTimeout,
			Cadence:     schedule.DefaultCadence,
		},
	)
	deps.LaunchHandler = launchHandler.New(&launchProc, logger)

	deps.LaunchRateLimiter = ratelimit.NewService(deps.RedisClient, "launch", cfg.Launch.RateLimitPerMinute, logger)

	// Initialize session manager and handler
	sessionManager := session.NewManager(session.NewRedisStorage(deps.RedisClient), logger)
	deps.SessionHandler = sessionHandler.New(sessionManager, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close kafka producer", err)
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if d.Store != nil {
		if err := d.Store.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close database", err)
		}
	}
}
