package middleware

import (
	"context"
	"math"
	"strconv"

	"hotel-reservation-api/response"
	"hotel-reservation-api/services"
	"hotel-reservation-api/services/logger"

	"github.com/gin-gonic/gin"
)

// Limiter takes one token for key
type Limiter interface {
	Allow(ctx context.Context, key string) (services.RateDecision, error)
}

// RateLimit throttles requests per client IP. A nil limiter disables it and
// limiter errors let the request through.
func RateLimit(limiter Limiter, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		decision, err := limiter.Allow(c.Request.Context(), "ip:"+ip)
		if err != nil {
			log.Warn("rate limit check for %s failed: %v", ip, err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(decision.Remaining, 10))

		if !decision.Allowed {
			seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(seconds))
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
