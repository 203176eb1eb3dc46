package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-server/internal/config"
	"marketing-server/internal/observability"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned by Get when the key does not exist
var ErrNotFound = errors.New("key not found")

var errNotInitialized = errors.New("redis client not initialized")

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client and verifies the connection
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "addr", Value: cfg.Addr},
		observability.Field{Key: "db", Value: cfg.DB},
	), "successfully connected to Redis")

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Get returns the string stored at key, or ErrNotFound
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	if c == nil || c.client == nil {
		return "", errNotInitialized
	}
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		c.logger.Error(ctx, "failed to get key", err)
		return "", fmt.Errorf("failed to get key: %w", err)
	}
	return value, nil
}

// SetNX stores value at key only if the key does not exist yet and reports whether it was set.
// A zero expiration keeps the key forever.
func (c *Client) SetNX(ctx context.Context, key, value string, expiration time.Duration) (bool, error) {
	if c == nil || c.client == nil {
		return false, errNotInitialized
	}
	ok, err := c.client.SetNX(ctx, key, value, expiration).Result()
	if err != nil {
		c.logger.Error(ctx, "failed to set key", err)
		return false, fmt.Errorf("failed to set key: %w", err)
	}
	return ok, nil
}

// Del deletes keys
func (c *Client) Del(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil {
		return errNotInitialized
	}
	return c.client.Del(ctx, keys...).Err()
}

// Ping checks the connection
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.client == nil {
		return errNotInitialized
	}
	return c.client.Ping(ctx).Err()
}

// windowHitScript trims a sorted-set log to the window ending at now, then records member if
// fewer than limit entries remain. It returns {allowed, count, oldest score or -1}.
//
// KEYS[1] log key
// ARGV[1] now (unix ms), ARGV[2] window (ms), ARGV[3] limit, ARGV[4] member, ARGV[5] ttl (ms)
var windowHitScript = redis.NewScript(`
local now = tonumber(ARGV[1])
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', '(' .. (now - tonumber(ARGV[2])))
local count = redis.call('ZCARD', KEYS[1])
local allowed = 0
if count < tonumber(ARGV[3]) then
	redis.call('ZADD', KEYS[1], now, ARGV[4])
	redis.call('PEXPIRE', KEYS[1], ARGV[5])
	count = count + 1
	allowed = 1
end
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
local oldestScore = -1
if #oldest > 0 then
	oldestScore = tonumber(oldest[2])
end
return {allowed, count, oldestScore}
`)

// WindowHit atomically records a hit for member in the sliding window of the given length ending
// at now, unless limit hits are already inside it. It returns whether the hit was recorded, the
// number of hits now in the window and the oldest hit's time (zero when the window is empty).
func (c *Client) WindowHit(ctx context.Context, key, member string, now time.Time, window time.Duration, limit int64) (bool, int64, time.Time, error) {
	if c == nil || c.client == nil {
		return false, 0, time.Time{}, errNotInitialized
	}

	res, err := windowHitScript.Run(ctx, c.client, []string{key},
		now.UnixMilli(),
		window.Milliseconds(),
		limit,
		member,
		(2 * window).Milliseconds(),
	).Int64Slice()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("failed to record window hit: %w", err)
	}
	if len(res) != 3 {
		return false, 0, time.Time{}, fmt.Errorf("failed to record window hit: unexpected reply %v", res)
	}

	var oldest time.Time
	if res[2] >= 0 {
		oldest = time.UnixMilli(res[2])
	}
	return res[0] == 1, res[1], oldest, nil
}
