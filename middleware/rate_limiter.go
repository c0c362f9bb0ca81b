package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/devifai-2026/feauage-backend-sub001/config"
	"github.com/devifai-2026/feauage-backend-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// DefaultRateLimiter applies RATE_LIMIT_MAX requests per RATE_LIMIT_WINDOW
func DefaultRateLimiter() gin.HandlerFunc {
	return RateLimiter(config.RedisClient, config.App.RateLimitMax, config.App.RateLimitWindow)
}

// RateLimiter is a fixed-window limiter keyed per IP, method and route
func RateLimiter(rdb *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			log.Printf("[rate-limit] ERROR incr key=%s err=%v", key, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			return
		}

		// First request → set expiry and stable resetAt
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := rdb.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				log.Printf("[rate-limit] ERROR set window key=%s err=%v", key, err)
			}
		}

		resetAtUnix, _ := rdb.Get(ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := max(maxRequests-int(count), 0)
		resetInSeconds := max(int(time.Until(resetAt).Seconds()), 0)

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.FailResponse(c, "Too many requests"))
			return
		}

		c.Next()
	}
}
