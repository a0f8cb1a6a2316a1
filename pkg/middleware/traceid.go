package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type traceIDKey struct{}

// TraceIDMiddleware tags every request with a trace id, reusing the one the
// caller sent when present. The id travels three ways: the gin context (for
// the response envelope), the response header, and the request context so
// layers below the controllers can log it.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Set("trace_id", traceID)
		c.Request = c.Request.WithContext(
			context.WithValue(c.Request.Context(), traceIDKey{}, traceID))
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}

// TraceIDFromContext returns the request's trace id, or "" for contexts that
// never passed through the middleware.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
