// Package redis holds the Redis client the service keeps as a readiness
// dependency: only the /health/ready probe consults it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medroster/roster-system/internal/pkg/config"
)

const dialTimeout = 5 * time.Second

// Open initialises the Redis client and confirms connectivity with a ping
// before the server starts accepting traffic.
func Open(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
