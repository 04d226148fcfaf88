package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/civichero/civichero-backend/config"
	httpapi "github.com/civichero/civichero-backend/internal/api/http"
)

// OpenRedis connects the department cache. An empty address means no cache
// and returns nil.
func OpenRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisPinger adapts a client for the health check. A nil client gives a nil
// Pinger so the cache shows as disabled.
func RedisPinger(client *redis.Client) httpapi.Pinger {
	if client == nil {
		return nil
	}
	return httpapi.PingFunc(func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}
