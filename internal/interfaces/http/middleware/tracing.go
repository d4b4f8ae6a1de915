package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/monitoring"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
)

// Tracing opens one span per request and threads the trace ID through the
// request context so log lines can be correlated with traces. With tracing
// disabled the manager hands out no-op spans and this reduces to a pass-through.
func Tracing(tracing *monitoring.TracingManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx, span := tracing.StartSpan(c.Request.Context(), c.Request.Method+" "+route)
		defer span.End()

		if traceID := tracing.TraceID(ctx); traceID != "" {
			ctx = context.WithValue(ctx, constants.ContextKeyTraceID, traceID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.status_code", status),
			attribute.String("http.client_ip", c.ClientIP()),
		)
		if status >= http.StatusInternalServerError {
			tracing.RecordError(ctx, fmt.Errorf("request failed with status %d", status))
		}
	}
}
