package service

import (
	"context"
	"errors"
	"time"

	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/clock"
	"github.com/smallbiznis/praxis/internal/config"
	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/internal/ledger/query"
	obscontext "github.com/smallbiznis/praxis/internal/observability/context"
	"github.com/smallbiznis/praxis/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/praxis/internal/observability/metrics"
	"github.com/smallbiznis/praxis/internal/observability/tracing"
	"github.com/smallbiznis/praxis/pkg/db"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	opHomeSummary          = "home_summary"
	opIncomeReport         = "income_report"
	opOutstandingBalances  = "outstanding_balances"
	opDashboard            = "dashboard"
	opAppointmentHistogram = "appointment_histogram"
	opNotesHistogram       = "notes_histogram"
	opUninvoicedTotal      = "uninvoiced_total"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Clock       clock.Clock
	Repo        ledger.Repository
	Reporting   *config.ReportingConfigHolder
	Metrics     *obsmetrics.Metrics     `optional:"true"`
	HTTPMetrics *obsmetrics.HTTPMetrics `optional:"true"`
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	clock       clock.Clock
	repo        ledger.Repository
	reporting   *config.ReportingConfigHolder
	metrics     *obsmetrics.Metrics
	httpMetrics *obsmetrics.HTTPMetrics
}

func NewService(p Params) analytics.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("analytics.service"),
		clock:       p.Clock,
		repo:        p.Repo,
		reporting:   p.Reporting,
		metrics:     p.Metrics,
		httpMetrics: p.HTTPMetrics,
	}
}

// scope describes one report call for spans and logs.
type scope struct {
	op          string
	granularity string
	start       time.Time
	end         time.Time
	clinicianID string
	filter      query.Filter
}

func (sc scope) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{attribute.String("report", sc.op)}
	if sc.granularity != "" {
		attrs = append(attrs, attribute.String("granularity", sc.granularity))
	}
	if !sc.start.IsZero() {
		attrs = append(attrs,
			attribute.String("range.start", sc.start.Format(time.RFC3339)),
			attribute.String("range.end", sc.end.Format(time.RFC3339)),
		)
	}
	return attrs
}

func (sc scope) fields() []zap.Field {
	fields := []zap.Field{zap.String("op", sc.op)}
	if !sc.start.IsZero() {
		fields = append(fields,
			zap.Time("range_start", sc.start),
			zap.Time("range_end", sc.end),
		)
	}
	if sc.clinicianID != "" {
		fields = append(fields, zap.String("filter_clinician_id", sc.clinicianID))
	}
	if sc.filter.Len() > 0 {
		fields = append(fields, zap.String("filter", sc.filter.String()))
	}
	return fields
}

// read runs fn inside one read-only snapshot. fn receives the snapshot's context and
// handle; any error it returns fails the whole report.
func (s *Service) read(ctx context.Context, sc scope, fn func(ctx context.Context, tx *gorm.DB) error) error {
	ctx = obscontext.WithReport(ctx, sc.op)
	ctx, span := tracing.StartSpan(ctx, "analytics."+sc.op, sc.attributes()...)
	started := time.Now()
	s.metrics.RecordReport(ctx, sc.op, sc.granularity)

	timeout := s.reporting.Get().StatementTimeout
	err := db.ReadSnapshot(ctx, s.db, timeout, func(tx *gorm.DB) error {
		return fn(tx.Statement.Context, tx)
	})
	if err != nil {
		err = s.dependencyFailure(ctx, sc, err)
	}

	s.httpMetrics.ObserveReport(sc.op, time.Since(started), err)
	tracing.EndSpan(span, err)
	return err
}

func (s *Service) dependencyFailure(ctx context.Context, sc scope, err error) error {
	timeout := db.IsStatementTimeout(err)
	reason := "query_error"
	if timeout {
		reason = "timeout"
	}
	s.metrics.RecordReportFailure(ctx, sc.op, reason)

	fields := append(sc.fields(), zap.Bool("timeout", timeout), zap.Error(err))
	logger.WithContext(ctx, s.log).Error("analytics report failed", fields...)

	var depErr *analytics.DependencyError
	if errors.As(err, &depErr) {
		return depErr
	}
	return &analytics.DependencyError{Op: sc.op, Err: err}
}

// invalid converts a request validation failure and counts it.
func (s *Service) invalid(ctx context.Context, op string, err error) error {
	s.metrics.RecordReportFailure(ctx, op, "validation")
	return analytics.AsValidation(err)
}

func clinicianIs(col query.Column, clinicianID string) query.Predicate {
	if clinicianID == "" {
		return nil
	}
	return query.Eq(col, clinicianID)
}
