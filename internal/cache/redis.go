// Package cache provides the Redis client and cache-aside helpers.
package cache

import (
	"context"
	"time"

	"github.com/srinipandiyan/26-Twitter-Clone/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Client is the shared Redis client. It is nil when Redis is unreachable;
// every caller must tolerate that.
var Client *redis.Client

// InitRedis connects to Redis at addr. On failure the application continues
// without caching or distributed rate limits.
func InitRedis(addr string) {
	Client = redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		middleware.Logger.Warn("Redis connection failed, continuing without cache", "error", err.Error())
		Client = nil
	} else {
		middleware.Logger.Info("Redis connected successfully")
	}
}

// GetClient returns the shared Redis client, or nil when unavailable.
func GetClient() *redis.Client {
	return Client
}
