package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/bandhub/band-management-backend/config"
	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"
)

// NewRedis connects to the configured Redis server. It returns nil, nil when
// no address is set; callers fall back to in-memory stores.
func NewRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	log.Info("redis connected", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return rdb, nil
}
