package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// rateLimitMiddleware applies a fixed-window request limit per client IP.
// Window counters live in an expiring in-memory cache; a zero or negative
// limit disables limiting.
func rateLimitMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	counters := cache.New(window, window*2)

	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		key := c.ClientIP()
		count, err := counters.IncrementInt64(key, 1)
		if err != nil {
			counters.Set(key, int64(1), cache.DefaultExpiration)
			count = 1
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}
