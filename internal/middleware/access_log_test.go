package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quillnote/quill-note-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLogWithLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.InfoLevel)
	r := gin.New()
	r.Use(TraceMiddlewareWithConfig(true, DefaultTraceIDHeader))
	r.Use(AccessLogWithLogger(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(DefaultTraceIDHeader, "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "/ping", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, http.MethodGet, fields[logger.FieldMethod])
	assert.Equal(t, "trace-123", fields[logger.FieldTraceID])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	// httptest 固定的 RemoteAddr，确认 ip 字段被填充
	assert.Equal(t, "192.0.2.1", fields["ip"])
}
