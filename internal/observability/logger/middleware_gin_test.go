package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedEngine(t *testing.T, handler gin.HandlerFunc) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	r := gin.New()
	r.Use(GinMiddleware(MiddlewareConfig{
		ErrorClassifier: func(err error) (string, string) { return "dependency_error", "income_report" },
	}))
	r.GET("/analytics/income", handler)
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, logs
}

func TestGinMiddlewareLogsReportWindow(t *testing.T) {
	r, logs := newObservedEngine(t, func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/analytics/income?startDate=2024-01-01&endDate=2024-01-31&limit=5&clinicianId=c-1", nil)
	req.Header.Set("X-Request-Id", "req-1")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-Id"))

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/analytics/income", fields["route"])
	assert.Equal(t, "2024-01-01", fields["start_date"])
	assert.Equal(t, "2024-01-31", fields["end_date"])
	assert.Equal(t, "5", fields["page_size"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.NotContains(t, fields, "clinicianId")
}

func TestGinMiddlewareClassifiesServerErrors(t *testing.T) {
	r, logs := newObservedEngine(t, func(c *gin.Context) {
		_ = c.Error(errors.New("ledger unavailable"))
		c.Status(http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/analytics/income", nil))

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "dependency_error", entries[0].ContextMap()["error_type"])
	assert.Equal(t, "income_report", entries[0].ContextMap()["error_code"])
}

func TestGinMiddlewareLogsProbesAtDebug(t *testing.T) {
	r, logs := newObservedEngine(t, func(c *gin.Context) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	entries := logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
}
