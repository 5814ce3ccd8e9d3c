package redissvc

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/supplysight/internal/config"
)

type RedisService struct {
	rdb *redis.Client
}

// Connect builds a client from cfg and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisService{rdb: rdb}, nil
}

func (a *RedisService) Rdb() *redis.Client {
	return a.rdb
}

func (a *RedisService) Close() error {
	return a.rdb.Close()
}
