package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestGinMiddlewareTagsReportWindow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/analytics/income/export", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet,
		"/analytics/income/export?startDate=2024-01-01&endDate=2024-01-31&format=csv&clinicianId=c-1", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "HTTP GET /analytics/income/export", spans[0].Name())

	attrs := map[attribute.Key]string{}
	for _, attr := range spans[0].Attributes() {
		attrs[attr.Key] = attr.Value.Emit()
	}
	assert.Equal(t, "2024-01-01", attrs["analytics.start_date"])
	assert.Equal(t, "2024-01-31", attrs["analytics.end_date"])
	assert.Equal(t, "csv", attrs["analytics.export_format"])
	assert.Equal(t, "200", attrs["http.status_code"])
	for key, value := range attrs {
		assert.NotEqual(t, "c-1", value, "attribute %s leaks the clinician id", key)
	}
}
