package jobs

import (
	"context"
	"fmt"

	"marketing-server/internal/config"
	"marketing-server/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// RedisOpt builds the asynq connection options from the shared redis config
func RedisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

// NewClient creates a new job client
func NewClient(cfg config.RedisConfig, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(RedisOpt(cfg)),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueStatusSweep enqueues a campaign status sweep job
func (c *Client) EnqueueStatusSweep(ctx context.Context, payload StatusSweepJobPayload) error {
	task, err := NewStatusSweepTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create status sweep task", err)
		return fmt.Errorf("failed to create status sweep task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue status sweep task", err)
		return fmt.Errorf("failed to enqueue status sweep task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued status sweep task: %s (queue: %s)", info.ID, info.Queue))
	return nil
}
