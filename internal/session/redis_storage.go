package session

import (
	"context"
	"errors"

	"marketing-server/internal/clients/redis"
)

// RedisStorage stores session ids in redis without expiry.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) RedisStorage {
	return RedisStorage{client: client}
}

func (s RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key)
	if errors.Is(err, redis.ErrNotFound) {
		return "", ErrNotFound
	}
	return value, err
}

func (s RedisStorage) SetIfAbsent(ctx context.Context, key, value string) (bool, error) {
	return s.client.SetNX(ctx, key, value, 0)
}
