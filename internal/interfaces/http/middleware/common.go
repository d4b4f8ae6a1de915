package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/monitoring"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/ratelimit"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	apperrors "github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// RequestID assigns each request a correlation ID, honoring one supplied by
// the client, and threads it through the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// RequestLogger logs one line per request with latency and status, and feeds
// the HTTP metrics.
func RequestLogger(log logger.Logger, metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()

		if metrics != nil {
			metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(status), elapsed)
		}

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.Int("status", status),
			logger.Duration("latency", elapsed),
			logger.String("client_ip", c.ClientIP()),
		}
		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			log.Error(ctx, "request failed", nil, fields...)
		case status >= http.StatusBadRequest:
			log.Warn(ctx, "request rejected", fields...)
		default:
			log.Info(ctx, "request served", fields...)
		}
	}
}

// Recovery converts panics into 500 responses without killing the server.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error(c.Request.Context(), "panic recovered", nil,
					logger.Any("panic", recovered),
					logger.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					apperrors.ToResponse(apperrors.ErrInternal))
			}
		}()
		c.Next()
	}
}

// RateLimit rejects clients exceeding the per-minute budget. The limiter
// fails open, so Redis trouble never blocks traffic.
func RateLimit(limiter *ratelimit.RedisLimiter, metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.GetString(string(constants.ContextKeyUserID))
		if clientID == "" {
			clientID = c.ClientIP()
		}

		allowed, err := limiter.Allow(c.Request.Context(), clientID)
		if err != nil {
			log.Warn(c.Request.Context(), "rate limit check failed", logger.Error(err))
		}
		if !allowed {
			if metrics != nil {
				metrics.RateLimitHits.Inc()
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apperrors.ToResponse(apperrors.ErrRateLimited))
			return
		}
		c.Next()
	}
}
