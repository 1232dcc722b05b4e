package config

import (
	"context"
	"time"

	"hotel-reservation-api/services/logger"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_ADDR is empty or the server does not
// answer; the API then runs without rate limiting.
func ConnectRedis(cfg RedisConfig, log logger.Logger) *redis.Client {
	if cfg.Addr == "" {
		log.Info("redis not configured, rate limiting disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.User,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis at %s unreachable, rate limiting disabled: %v", cfg.Addr, err)
		_ = rdb.Close()
		return nil
	}

	log.Info("connected to redis at %s", cfg.Addr)
	return rdb
}
