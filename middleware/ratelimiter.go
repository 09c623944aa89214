package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	libredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"github.com/yug1204/event-registration/config"
)

// RateLimiter returns a Gin middleware that limits registration submissions
// per IP. With REDIS_ADDR set the counters live in redis so multiple
// instances share one budget; otherwise an in-process store is used.
func RateLimiter(cfg *config.Config) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  20,
	}

	var store limiter.Store

	if cfg.RedisAddr != "" {
		client := libredis.NewClient(&libredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		redisStore, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix: "event_registration_limiter",
		})
		if err != nil {
			log.Printf("⚠️ Redis limiter store unavailable, falling back to memory: %v", err)
			store = memory.NewStore()
		} else {
			store = redisStore
		}
	} else {
		store = memory.NewStore()
	}

	instance := limiter.New(store, rate)

	return ginlimiter.NewMiddleware(instance)
}
