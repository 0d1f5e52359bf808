package metrics

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics holds Prometheus collectors for the HTTP boundary and report execution.
type HTTPMetrics struct {
	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	reportDuration *prometheus.HistogramVec
	exportBytes    *prometheus.CounterVec
}

// NewHTTPMetrics registers collectors on reg, reusing collectors that are already registered.
func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "praxis_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"method", "route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "praxis_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	reportDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "praxis_report_duration_seconds",
		Help:    "Time spent building a report, including ledger queries.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"report", "outcome"})
	exportBytes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "praxis_export_bytes_total",
		Help: "Bytes written by report exports by format.",
	}, []string{"format"})

	var err error
	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	if reportDuration, err = register(reg, reportDuration); err != nil {
		return nil, err
	}
	if exportBytes, err = register(reg, exportBytes); err != nil {
		return nil, err
	}

	return &HTTPMetrics{
		requests:       requests,
		duration:       duration,
		reportDuration: reportDuration,
		exportBytes:    exportBytes,
	}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// ObserveReport records how long a report took and whether it succeeded.
func (m *HTTPMetrics) ObserveReport(report string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.reportDuration.WithLabelValues(strings.TrimSpace(report), outcome).Observe(elapsed.Seconds())
}

// AddExportBytes counts bytes written for an export format.
func (m *HTTPMetrics) AddExportBytes(format string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.exportBytes.WithLabelValues(strings.TrimSpace(format)).Add(float64(n))
}

// GinMiddleware records request counts and latency per route.
func GinMiddleware(m *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		method := strings.ToUpper(c.Request.Method)
		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
