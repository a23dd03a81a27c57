package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lineup/internal/infrastructure/ratelimit"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

// RateLimit throttles requests per client IP through the shared sliding
// window limiter. The scope keeps booking and admin traffic in separate
// buckets.
func RateLimit(limiter ratelimit.Limiter, scope string, cfg ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			// Fail open when the limiter backend is unreachable.
			log.Warnw("rate limiter unavailable, allowing request", "error", err, "scope", scope)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
