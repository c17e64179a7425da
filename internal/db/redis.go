package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient parses a redis:// URL, connects, and pings before returning.
func NewRedisClient(ctx context.Context, rawURL string, log *zap.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info("connected to redis", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return client, nil
}
