package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	reportRequests metric.Int64Counter
	reportFailures metric.Int64Counter
	ledgerRows     metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "praxis"
	}
	meter := provider.Meter(name)

	reportRequests, err := meter.Int64Counter("praxis_report_requests_total")
	if err != nil {
		return nil, err
	}
	reportFailures, err := meter.Int64Counter("praxis_report_failures_total")
	if err != nil {
		return nil, err
	}
	ledgerRows, err := meter.Int64Counter("praxis_ledger_rows_read_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		reportRequests: reportRequests,
		reportFailures: reportFailures,
		ledgerRows:     ledgerRows,
	}, nil
}

// RecordReport increments report request counts.
func (m *Metrics) RecordReport(ctx context.Context, report, granularity string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("report", strings.TrimSpace(report)),
		attribute.String("granularity", strings.TrimSpace(granularity)),
	)
	m.reportRequests.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordReportFailure increments report failure counts.
func (m *Metrics) RecordReportFailure(ctx context.Context, report, reason string) {
	if m == nil {
		return
	}
	attrs := FilterAttributes(
		attribute.String("report", strings.TrimSpace(report)),
		attribute.String("reason", strings.TrimSpace(reason)),
	)
	m.reportFailures.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordLedgerRows counts ledger rows loaded for aggregation.
func (m *Metrics) RecordLedgerRows(ctx context.Context, source string, rows int) {
	if m == nil || rows <= 0 {
		return
	}
	attrs := FilterAttributes(attribute.String("source_type", strings.TrimSpace(source)))
	m.ledgerRows.Add(ctx, int64(rows), metric.WithAttributes(attrs...))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	protocol = strings.ToLower(strings.TrimSpace(protocol))
	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(context.Background(), opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(context.Background(), opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}

var allowedLabelKeys = map[attribute.Key]struct{}{
	"report":      {},
	"granularity": {},
	"format":      {},
	"status_code": {},
	"source_type": {},
	"reason":      {},
}

// FilterAttributes strips disallowed labels to keep metrics low-cardinality.
func FilterAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedLabelKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}
