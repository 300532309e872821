package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nails/driver-invoice-worldpay/internal/config"
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// RedisOptionsFromEnv reads REDIS_ADDR (default localhost:6379),
// REDIS_PASSWORD and REDIS_DB.
func RedisOptionsFromEnv() RedisOptions {
	return RedisOptions{
		Addr:     config.Getenv("REDIS_ADDR", "localhost:6379"),
		Password: config.Getenv("REDIS_PASSWORD", ""),
		DB:       config.GetenvInt("REDIS_DB", 0),
	}
}

// NewRedisClient connects and pings, so a bad address fails at startup
// rather than on the first redirect.
func NewRedisClient(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	log.Printf("[worldpay][store] redis client addr=%s db=%d", opts.Addr, opts.DB)
	return rdb, nil
}
