package ratelimit

import (
	"math"
	"strconv"

	"wheel-server/internal/apierrors"
	"wheel-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// KeyFunc derives the limiter key from a request
type KeyFunc func(c *gin.Context) string

// TenantClientKey limits each client IP separately per tenant
func TenantClientKey(c *gin.Context) string {
	return "play:" + c.Param("tenant_id") + ":" + observability.GetRealClientIP(c)
}

// Middleware rejects requests over the limit with 429 and a Retry-After header
func (s *Service) Middleware(keyFn KeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.Active() {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		result, err := s.Check(ctx, keyFn(c))
		if err != nil {
			// Fail open, plays are still bounded by the daily limit
			s.logger.WarnWithError(ctx, "rate limit check failed", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := int(math.Ceil(result.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			s.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_seconds", Value: retryAfter},
			), "rate limit exceeded")

			apiErr := apierrors.TooManyRequests(apierrors.CodeRateLimited, "Too many requests. Please slow down.")
			apiErr.RetryAfter = retryAfter
			apierrors.RespondWithError(c, apiErr)
			return
		}

		c.Next()
	}
}
