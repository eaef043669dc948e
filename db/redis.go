package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const counterKeyPrefix = "finbuddy:ratelimit:"

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		fmt.Println("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(context.Background()).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// IncrWindow increments the fixed-window counter for key and returns the new
// count and the time left until the window resets. The expiry is set when the
// counter is first created.
func IncrWindow(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	full := counterKeyPrefix + key

	count, err := Redis.Incr(ctx, full).Result()
	if err != nil {
		return 0, 0, err
	}

	if count == 1 {
		if err := Redis.Expire(ctx, full, window).Err(); err != nil {
			return count, window, err
		}
		return count, window, nil
	}

	ttl, err := Redis.TTL(ctx, full).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	return count, ttl, nil
}
