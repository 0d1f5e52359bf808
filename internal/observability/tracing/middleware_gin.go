package tracing

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/praxis/internal/observability/context"
	"github.com/smallbiznis/praxis/pkg/telemetry/correlation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/baggage"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// GinMiddleware instruments inbound HTTP requests.
func GinMiddleware() gin.HandlerFunc {
	tracer := otel.Tracer("praxis/http")
	return func(c *gin.Context) {
		ctx := ExtractContext(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		ctx, span := tracer.Start(ctx, "HTTP "+strings.ToUpper(c.Request.Method), trace.WithSpanKind(trace.SpanKindServer))

		var members []baggage.Member
		if requestID := obscontext.RequestIDFromContext(ctx); requestID != "" {
			if member, err := baggage.NewMember("request_id", requestID); err == nil {
				members = append(members, member)
			}
			span.SetAttributes(attribute.String("request_id", requestID))
		}
		if correlationID := correlation.ExtractCorrelationID(ctx); correlationID != "" {
			if member, err := baggage.NewMember("correlation_id", correlationID); err == nil {
				members = append(members, member)
			}
			span.SetAttributes(attribute.String("correlation_id", correlationID))
		}
		if len(members) > 0 {
			if bag, err := baggage.New(members...); err == nil {
				ctx = baggage.ContextWithBaggage(ctx, bag)
			}
		}

		c.Request = c.Request.WithContext(ctx)
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		span.SetName("HTTP " + strings.ToUpper(c.Request.Method) + " " + route)
		attrs := []attribute.KeyValue{
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.Int("http.status_code", c.Writer.Status()),
			attribute.Int64("http.server_duration_ms", time.Since(start).Milliseconds()),
		}
		span.SetAttributes(SafeAttributes(append(attrs, reportAttributes(c)...)...)...)

		if status := c.Writer.Status(); status >= http.StatusInternalServerError {
			if lastErr := c.Errors.Last(); lastErr != nil {
				if safeErr := SafeError(lastErr.Err); safeErr != nil {
					span.RecordError(safeErr)
				}
			}
			span.SetStatus(codes.Error, "request error")
		}
		span.End()
	}
}

// reportAttributes tags the span with the report window and export shape. Clinician and
// client ids are never attached.
func reportAttributes(c *gin.Context) []attribute.KeyValue {
	var attrs []attribute.KeyValue
	if selector := strings.TrimSpace(c.Query("range")); selector != "" {
		attrs = append(attrs, attribute.String("analytics.range", selector))
	}
	if start := strings.TrimSpace(c.Query("startDate")); start != "" {
		attrs = append(attrs, attribute.String("analytics.start_date", start))
	}
	if end := strings.TrimSpace(c.Query("endDate")); end != "" {
		attrs = append(attrs, attribute.String("analytics.end_date", end))
	}
	if format := strings.TrimSpace(c.Query("format")); format != "" {
		attrs = append(attrs, attribute.String("analytics.export_format", format))
	}
	return attrs
}
