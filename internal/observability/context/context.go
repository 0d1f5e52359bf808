package context

import (
	stdcontext "context"
	"strings"
)

type requestIDKey struct{}
type clinicianIDKey struct{}

// WithRequestID stores the inbound request id.
func WithRequestID(ctx stdcontext.Context, requestID string) stdcontext.Context {
	requestID = strings.TrimSpace(requestID)
	if ctx == nil || requestID == "" {
		return ctx
	}
	return stdcontext.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx stdcontext.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// WithClinicianID records the clinician filter a request is scoped to, for log enrichment only.
func WithClinicianID(ctx stdcontext.Context, clinicianID string) stdcontext.Context {
	clinicianID = strings.TrimSpace(clinicianID)
	if ctx == nil || clinicianID == "" {
		return ctx
	}
	return stdcontext.WithValue(ctx, clinicianIDKey{}, clinicianID)
}

func ClinicianIDFromContext(ctx stdcontext.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(clinicianIDKey{}).(string); ok {
		return v
	}
	return ""
}

type reportKey struct{}

// WithReport names the report being built so SQL and failure logs can be grouped by it.
func WithReport(ctx stdcontext.Context, report string) stdcontext.Context {
	report = strings.TrimSpace(report)
	if ctx == nil || report == "" {
		return ctx
	}
	return stdcontext.WithValue(ctx, reportKey{}, report)
}

func ReportFromContext(ctx stdcontext.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(reportKey{}).(string); ok {
		return v
	}
	return ""
}
