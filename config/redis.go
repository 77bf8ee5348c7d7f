package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the rate-limiter backend. Redis is optional for
// this service: without REDIS_URL the limiter middleware is skipped.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("[config.redis] REDIS_URL not set, rate limiting disabled")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("[config.redis] invalid REDIS_URL: %v", err)
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("[config.redis] ping failed (%v), rate limiting disabled", err)
		return
	}

	RedisClient = client
	log.Println("[config.redis] connected")
}
