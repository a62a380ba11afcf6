package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	// RedisClient stays nil when Redis is not configured; callers that only
	// cache must treat that as a miss.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	redisURL := getEnv("REDIS_URL", "")
	if redisURL == "" {
		Log.Warn("⚠️  REDIS_URL not set, facet cache and rate limiting disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		Log.Error("❌ invalid REDIS_URL, continuing without Redis", zap.Error(err))
		return
	}

	client := redis.NewClient(opt)
	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		Log.Error("❌ failed to connect to Redis, continuing without it", zap.Error(err))
		_ = client.Close()
		return
	}

	RedisClient = client
	Log.Info("✅ Connected to Redis", zap.String("ping", res))
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
