package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromURL parses a redis:// URL and returns a connected client.
// A failed ping is logged, not fatal: callers treat redis as optional.
func NewRedisFromURL(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		slog.Error("invalid REDIS_URL", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Warn("redis ping failed", "addr", opts.Addr, "error", err)
	}
	return rdb
}

// Close closes the client, ignoring a nil one.
func Close(rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = rdb.Close()
}
