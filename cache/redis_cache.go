// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisInvalidator drops rendered-page cache keys from redis. Keys are
// "view:<name>", matching what the frontend cache writes.
type RedisInvalidator struct {
	client *redis.Client
}

func NewRedisInvalidator(ctx context.Context, url string) (*RedisInvalidator, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis URL: %w", err)
	}

	c := redis.NewClient(opts)

	if err := c.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}

	return &RedisInvalidator{client: c}, nil
}

func (ri *RedisInvalidator) Invalidate(ctx context.Context, views ...string) error {
	if len(views) == 0 {
		return nil
	}
	keys := make([]string, len(views))
	for i, v := range views {
		keys[i] = "view:" + v
	}
	if err := ri.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error invalidating views: %w", err)
	}
	return nil
}

func (ri *RedisInvalidator) Close() error {
	if err := ri.client.Close(); err != nil {
		return fmt.Errorf("error closing redis client: %w", err)
	}
	return nil
}
