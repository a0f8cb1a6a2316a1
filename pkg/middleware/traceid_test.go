package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceIDRouter(fromGin, fromCtx *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		*fromGin = c.GetString("trace_id")
		*fromCtx = TraceIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestTraceIDMiddleware_GeneratesAndPropagates(t *testing.T) {
	var fromGin, fromCtx string
	r := traceIDRouter(&fromGin, &fromCtx)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	header := w.Header().Get("X-Trace-ID")
	require.NotEmpty(t, header)
	assert.Equal(t, header, fromGin)
	assert.Equal(t, header, fromCtx)
}

func TestTraceIDMiddleware_ReusesIncomingID(t *testing.T) {
	var fromGin, fromCtx string
	r := traceIDRouter(&fromGin, &fromCtx)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "upstream-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id", w.Header().Get("X-Trace-ID"))
	assert.Equal(t, "upstream-id", fromGin)
	assert.Equal(t, "upstream-id", fromCtx)
}

func TestTraceIDFromContext_Unset(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}
