package common

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"youthstream/palco/internal/logging"
)

// NewRedisClient builds a client for the shared cache. A failed ping
// is logged but not fatal; the pool reconnects on use.
func NewRedisClient(addr, password string, db int) *redis.Client {
	logging.Info("Initializing Redis client", "addr", addr, "db", db)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logging.Warn("Failed to ping Redis", "error", err.Error())
		return client
	}

	logging.Info("Connected to Redis")
	return client
}
