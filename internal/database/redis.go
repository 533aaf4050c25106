package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"warroom-board-api/internal/config"
)

var RedisClient *redis.Client

// InitRedis connects to redis for presence tracking. The service degrades
// gracefully without it; callers must tolerate GetRedis returning nil.
func InitRedis(cfg config.Config, log *zap.Logger) error {
	var client *redis.Client

	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	RedisClient = client
	log.Info("Redis connection established successfully",
		zap.String("addr", cfg.Redis.Addr),
		zap.Int("db", cfg.Redis.DB))
	return nil
}

// GetRedis returns nil instead of panicking so the service can run without Redis
func GetRedis() *redis.Client {
	return RedisClient
}
