package logger

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	obscontext "github.com/smallbiznis/praxis/internal/observability/context"
	"github.com/smallbiznis/praxis/pkg/telemetry/correlation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	headerRequestID     = "X-Request-Id"
	headerCorrelationID = "X-Correlation-Id"
	contextRequestIDKey = "request_id"
)

// reportQueryFields maps report query parameters onto log field names. Only the window,
// paging and export shape are logged; ids stay out of request logs.
var reportQueryFields = []struct {
	param string
	field string
}{
	{param: "range", field: "range"},
	{param: "startDate", field: "start_date"},
	{param: "endDate", field: "end_date"},
	{param: "page", field: "page"},
	{param: "pageSize", field: "page_size"},
	{param: "limit", field: "page_size"},
	{param: "format", field: "export_format"},
}

// MiddlewareConfig controls request logging behavior.
type MiddlewareConfig struct {
	Debug           bool
	ErrorClassifier func(err error) (string, string)
}

// GinMiddleware assigns request and correlation ids, then logs one http_request line per
// request with the report window it asked for.
func GinMiddleware(cfg MiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		ctx := obscontext.WithRequestID(c.Request.Context(), requestID(c))
		ctx = correlation.ContextWithCorrelationID(ctx, strings.TrimSpace(c.GetHeader(headerCorrelationID)))
		ctx, correlationID := correlation.EnsureCorrelationID(ctx)
		c.Header(headerCorrelationID, correlationID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		route := c.FullPath()
		if strings.TrimSpace(route) == "" {
			route = "unknown"
		}
		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.Int("bytes_out", max(c.Writer.Size(), 0)),
		}
		fields = append(fields, reportFields(c)...)

		if lastErr := c.Errors.Last(); lastErr != nil {
			var errorType, errorCode string
			if cfg.ErrorClassifier != nil {
				errorType, errorCode = cfg.ErrorClassifier(lastErr.Err)
			}
			fields = append(fields,
				zap.String("error_type", errorType),
				zap.String("error_code", errorCode),
			)
			if cfg.Debug {
				fields = append(fields, zap.Stack("stack"))
			}
		}

		if ce := FromContext(c.Request.Context()).Check(requestLevel(route, status), "http_request"); ce != nil {
			ce.Write(fields...)
		}
	}
}

func requestID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(headerRequestID))
	if id == "" {
		id = strings.TrimSpace(c.GetString(contextRequestIDKey))
	}
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(contextRequestIDKey, id)
	c.Header(headerRequestID, id)
	return id
}

func reportFields(c *gin.Context) []zap.Field {
	var fields []zap.Field
	seen := map[string]bool{}
	for _, q := range reportQueryFields {
		if seen[q.field] {
			continue
		}
		if value := strings.TrimSpace(c.Query(q.param)); value != "" {
			fields = append(fields, zap.String(q.field, value))
			seen[q.field] = true
		}
	}
	return fields
}

// requestLevel keeps probes at debug and server failures at error.
func requestLevel(route string, status int) zapcore.Level {
	switch {
	case strings.EqualFold(route, "/metrics"), strings.EqualFold(route, "/health"):
		return zapcore.DebugLevel
	case status >= http.StatusInternalServerError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
