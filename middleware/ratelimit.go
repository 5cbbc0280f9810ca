package middleware

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/miscanchas/canchas-api/utils"
)

// Fixed window per client IP: 100 requests every 15 minutes.
const (
	rateLimitMax    = 100
	rateLimitWindow = 15 * time.Minute
)

var rdb *redis.Client

// InitRateLimiter connects to Redis when REDIS_ADDR is set. Without it the
// limiter stays disabled and RateLimit becomes a pass-through.
func InitRateLimiter() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, rate limiting disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("Failed to connect to Redis, rate limiting disabled: %v", err)
		return
	}

	rdb = client
	log.Println("Connected to Redis")
}

func RateLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:ip:%s", c.IP())
		ctx := c.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis being down should not take the API with it.
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(ctx, key, rateLimitWindow)
		}

		if count > rateLimitMax {
			return c.Status(fiber.StatusTooManyRequests).JSON(utils.APIResponse{
				Message: "Demasiadas peticiones, intentá de nuevo en 15 minutos.",
			})
		}

		return c.Next()
	}
}
