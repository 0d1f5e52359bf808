package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	analyticsdomain "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/analytics/export"
	"github.com/smallbiznis/praxis/internal/clock"
	"github.com/smallbiznis/praxis/internal/config"
	"github.com/smallbiznis/praxis/internal/providers/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIncomeService struct {
	analyticsdomain.Service
	req analyticsdomain.IncomeRequest
}

func (s *stubIncomeService) GetIncomeReport(ctx context.Context, req analyticsdomain.IncomeRequest) (analyticsdomain.IncomeReport, error) {
	s.req = req
	row := analyticsdomain.IncomeRow{
		Label:          "2024-01-01",
		ClientPayments: decimal.RequireFromString("1234.5"),
		GrossIncome:    decimal.RequireFromString("1234.5"),
		NetIncome:      decimal.RequireFromString("1234.5"),
	}
	totals := row
	totals.Label = "Totals"
	return analyticsdomain.IncomeReport{
		Range: daterange.Range{
			Start:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:         time.Date(2024, 1, 1, 23, 59, 59, 999_000_000, time.UTC),
			Granularity: daterange.GranularityDay,
		},
		Rows:   []analyticsdomain.IncomeRow{row},
		Totals: totals,
	}, nil
}

func TestParseExportFormat(t *testing.T) {
	for raw, want := range map[string]export.Format{
		"csv":   export.FormatCSV,
		"EXCEL": export.FormatExcel,
		" pdf ": export.FormatPDF,
	} {
		got, err := parseExportFormat(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := parseExportFormat("xml")
	assert.EqualError(t, err, "format must be one of: csv, excel, pdf")
}

func TestRenderIncomeUsesTheFullRange(t *testing.T) {
	svc := &stubIncomeService{}
	renderer := export.NewRenderer(&pdf.NoOpProvider{}, clock.NewFakeClock(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))

	file, err := renderIncome(context.Background(), svc, renderer, config.DefaultReportingConfig(), export.FormatCSV, exportIncomeOptions{
		start:     "2024-01-01",
		end:       "2024-01-01",
		clinician: "c-1",
	})
	require.NoError(t, err)

	assert.Equal(t, analyticsdomain.IncomeRequest{StartDate: "2024-01-01", EndDate: "2024-01-01", ClinicianID: "c-1"}, svc.req)
	assert.Equal(t, "income-report-2024-01-01-2024-01-01.csv", file.Name)
	assert.True(t, strings.Contains(string(file.Body), "$1,234.50"))
}

func TestWithReportingConfigPathUsesTheFlagDirectory(t *testing.T) {
	previous := cfgFile
	t.Cleanup(func() { cfgFile = previous })

	cfgFile = "/etc/praxis-staging/reporting.yml"
	cfg := withReportingConfigPath(config.Config{})
	assert.Equal(t, "/etc/praxis-staging", cfg.ReportingConfigPath)

	cfgFile = ""
	cfg = withReportingConfigPath(config.Config{ReportingConfigPath: "/srv"})
	assert.Equal(t, "/srv", cfg.ReportingConfigPath)
}
