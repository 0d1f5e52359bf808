package metrics

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestFilterAttributesDropsForbiddenLabels(t *testing.T) {
	attrs := FilterAttributes(
		attribute.String("report", "income"),
		attribute.String("clinician_id", "c-1"),
		attribute.String("granularity", "day"),
	)
	if len(attrs) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "report" && attrs[1].Key != "report" {
		t.Fatalf("expected report to be retained")
	}
	if attrs[0].Key != "granularity" && attrs[1].Key != "granularity" {
		t.Fatalf("expected granularity to be retained")
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.RecordReport(context.Background(), "income", "day")
	m.RecordReportFailure(context.Background(), "income", "dependency")
	m.RecordLedgerRows(context.Background(), "payments", 10)
}

func TestNewWithNoopProvider(t *testing.T) {
	m, err := New(Config{ServiceName: "praxis"}, noop.NewMeterProvider())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.RecordReport(context.Background(), "home", "day")
}
