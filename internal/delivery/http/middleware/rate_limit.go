package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/metrics"
	"portfolio-backend/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// ThrottledMessage is the body text of a 429.
const ThrottledMessage = "Too many requests. Please try again later."

// fallbackIdentity is used when no forwarding header is present.
const fallbackIdentity = "127.0.0.1"

// ClientIdentity derives the rate-limit key from X-Forwarded-For, taking
// the first hop. The header is trusted as set by the edge proxy.
func ClientIdentity(c *gin.Context) string {
	xff := c.GetHeader("X-Forwarded-For")
	if first, _, _ := strings.Cut(xff, ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	return fallbackIdentity
}

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	Limiter ratelimit.Limiter
	// Custom key extractor (default: ClientIdentity)
	KeyFunc func(*gin.Context) string
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	Now     func() time.Time
}

// RateLimitMiddleware checks the limiter before the handler runs, so
// throttled requests never reach body parsing. Limiter errors fail open.
func RateLimitMiddleware(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = ClientIdentity
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return func(c *gin.Context) {
		key := cfg.KeyFunc(c)

		res, err := cfg.Limiter.Allow(c.Request.Context(), key)
		if err != nil {
			cfg.Logger.ErrorContext(c.Request.Context(), "rate limiter unavailable, allowing request",
				"error", err, "path", c.FullPath())
			c.Next()
			return
		}

		setRateLimitHeaders(c, res)

		if !res.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(res.RetryAfter(cfg.Now()).Seconds())))
			cfg.Metrics.ObserveSubmission(metrics.OutcomeThrottled)
			cfg.Logger.WarnContext(c.Request.Context(), "rate limit triggered",
				"identity", key, "path", c.FullPath(), "request_id", c.GetString(response.RequestIDKey))

			response.Error(c, http.StatusTooManyRequests, ThrottledMessage, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func setRateLimitHeaders(c *gin.Context, res ratelimit.Result) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(res.Reset.UnixMilli(), 10))
}
