package database

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient initializes a Redis client for the catalog cache. Redis is
// optional; when the URL is empty or the server is unreachable the caller
// falls back to direct Mongo reads, so connection problems are logged, not
// fatal.
func NewRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		zap.L().Warn("Invalid Redis URL, catalog cache disabled", zap.Error(err))
		return nil
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		zap.L().Warn("Redis unreachable, catalog cache degraded", zap.Error(err))
	} else {
		zap.L().Info("Connected to Redis")
	}
	return client
}
