package domain

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	"github.com/smallbiznis/praxis/pkg/db/pagination"
)

// HomeRequest takes strict YYYY-MM-DD bounds.
type HomeRequest struct {
	StartDate   string
	EndDate     string
	ClinicianID string
}

// HomeSummary aggregates completed appointments. NetIncome equals GrossIncome at this
// level; no clinician cut is taken.
type HomeSummary struct {
	GrossIncome         decimal.Decimal
	TotalClientPayments decimal.Decimal
	NetIncome           decimal.Decimal
	StartDate           string
	EndDate             string
}

// IncomeRequest takes strict bounds. A zero PageSize returns every row.
type IncomeRequest struct {
	StartDate   string
	EndDate     string
	ClinicianID string
	Page        int
	PageSize    int
}

// IncomeRow is one bucket of the income report. NetIncome is GrossIncome minus ClinicianCut.
type IncomeRow struct {
	Label          string
	ClientPayments decimal.Decimal
	GrossIncome    decimal.Decimal
	ClinicianCut   decimal.Decimal
	NetIncome      decimal.Decimal
}

// IncomeReport holds the requested page of bucket rows and the totals of the whole range.
type IncomeReport struct {
	Range         daterange.Range
	ClinicianID   string
	ClinicianName string
	Rows          []IncomeRow
	Totals        IncomeRow
	Pagination    pagination.Info
}

type OutstandingRequest struct {
	StartDate   string
	EndDate     string
	ClinicianID string
	Page        int
	PageSize    int
}

// OutstandingRow is one client group's balance. TotalAmountUnpaid may be negative on overpayment.
type OutstandingRow struct {
	ClientGroupID         string
	ClientGroupName       string
	ResponsibleClientName string
	TotalAmountInvoiced   decimal.Decimal
	TotalAmountPaid       decimal.Decimal
	TotalAmountUnpaid     decimal.Decimal
}

type OutstandingPage struct {
	Data       []OutstandingRow
	Pagination pagination.Info
}

// DashboardRequest takes a range selector; StartDate and EndDate apply to custom only.
type DashboardRequest struct {
	Range       string
	StartDate   string
	EndDate     string
	ClinicianID string
}

type ChartPoint struct {
	Label string
	Value decimal.Decimal
}

// CategoryCount is one fixed histogram category.
type CategoryCount struct {
	Name  string
	Count int64
}

// Histogram counts every in-range row in Total; Categories always lists every category.
type Histogram struct {
	Total      int64
	Categories []CategoryCount
}

type Dashboard struct {
	Range             daterange.Range
	Income            decimal.Decimal
	IncomeChart       []ChartPoint
	Outstanding       decimal.Decimal
	Uninvoiced        decimal.Decimal
	Appointments      int64
	AppointmentsChart []CategoryCount
	Notes             int64
	NotesChart        []CategoryCount
}

type Service interface {
	GetHomeSummary(ctx context.Context, req HomeRequest) (HomeSummary, error)
	GetIncomeReport(ctx context.Context, req IncomeRequest) (IncomeReport, error)
	GetOutstandingBalances(ctx context.Context, req OutstandingRequest) (OutstandingPage, error)
	GetDashboard(ctx context.Context, req DashboardRequest) (Dashboard, error)
	GetAppointmentHistogram(ctx context.Context, req DashboardRequest) (Histogram, error)
	GetNotesHistogram(ctx context.Context, req DashboardRequest) (Histogram, error)
	GetUninvoicedTotal(ctx context.Context, clinicianID string) (decimal.Decimal, error)
}
