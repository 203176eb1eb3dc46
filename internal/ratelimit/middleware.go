package ratelimit

import (
	"fmt"
	"net/http"

	authhandler "marketing-server/internal/auth/handler"
	"marketing-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Middleware creates a Gin middleware for rate limiting. It runs after the JWT middleware and
// lets the request through when the limiter itself is unavailable.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userIDStr := c.GetString(authhandler.UserIDKey)
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			// No authenticated user, nothing to key the limit on
			c.Next()
			return
		}

		result, err := s.CheckRateLimit(ctx, userID)
		if err != nil {
			s.logger.WarnWithError(ctx, "rate limit check failed, allowing request", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			), "rate limit exceeded")

			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"limit":       result.Limit,
				"retry_after": retryAfter,
				"reset_at":    result.ResetAt.Unix(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
