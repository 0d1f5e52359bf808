package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/clock"
	"github.com/smallbiznis/praxis/internal/providers/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var meta = Meta{PracticeName: "Northside Counseling", CurrencySymbol: "$"}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func incomeRow(label, payments, gross, cut string) analytics.IncomeRow {
	g, c := dec(gross), dec(cut)
	return analytics.IncomeRow{
		Label:          label,
		ClientPayments: dec(payments),
		GrossIncome:    g,
		ClinicianCut:   c,
		NetIncome:      g.Sub(c),
	}
}

func sampleReport(t *testing.T) analytics.IncomeReport {
	t.Helper()
	r, err := daterange.ParseStrict("2024-01-01", "2024-01-02", time.UTC)
	require.NoError(t, err)
	rows := []analytics.IncomeRow{
		incomeRow("2024-01-01", "1234.5", "1400", "840.33"),
		incomeRow("2024-01-02", "90", "50", "0"),
	}
	totals := incomeRow("Totals", "0", "0", "0")
	for _, row := range rows {
		totals.ClientPayments = totals.ClientPayments.Add(row.ClientPayments)
		totals.GrossIncome = totals.GrossIncome.Add(row.GrossIncome)
		totals.ClinicianCut = totals.ClinicianCut.Add(row.ClinicianCut)
		totals.NetIncome = totals.NetIncome.Add(row.NetIncome)
	}
	return analytics.IncomeReport{Range: r, Rows: rows, Totals: totals}
}

func TestFormatCurrency(t *testing.T) {
	cases := map[string]string{
		"0":           "$0.00",
		"5":           "$5.00",
		"85":          "$85.00",
		"999.999":     "$1,000.00",
		"1234.5":      "$1,234.50",
		"1234567.89":  "$1,234,567.89",
		"-12.5":       "-$12.50",
		"-1000":       "-$1,000.00",
		"-0.004":      "$0.00",
		"-999999.995": "-$1,000,000.00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatCurrency("$", dec(in)), in)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	f, err = ParseFormat("excel")
	require.NoError(t, err)
	assert.Equal(t, FormatExcel, f)

	for _, raw := range []string{"", "pdf", "xlsx"} {
		_, err := ParseFormat(raw)
		assert.ErrorIs(t, err, analytics.ErrInvalidFormat, raw)
		assert.EqualError(t, err, "format must be one of: csv, excel")
	}
}

func TestFilename(t *testing.T) {
	report := sampleReport(t)
	assert.Equal(t, "income-report-2024-01-01-2024-01-02.csv", Filename(report, FormatCSV))
	assert.Equal(t, "income-report-2024-01-01-2024-01-02.xlsx", Filename(report, FormatExcel))

	report.ClinicianName = "Ada Reyes"
	assert.Equal(t, "income-report-2024-01-01-2024-01-02-ada-reyes.pdf", Filename(report, FormatPDF))
}

func TestWriteCSV(t *testing.T) {
	body, err := WriteCSV(sampleReport(t), meta)
	require.NoError(t, err)

	want := strings.Join([]string{
		"Date,Client Payments,Gross Income,Clinician Cut,Net Income",
		`Totals,"$1,324.50","$1,450.00",$840.33,$609.67`,
		`2024-01-01,"$1,234.50","$1,400.00",$840.33,$559.67`,
		"2024-01-02,$90.00,$50.00,$0.00,$50.00",
		"",
	}, "\n")
	assert.Equal(t, want, string(body))
}

func TestWriteCSVTotalsEqualRowSums(t *testing.T) {
	body, err := WriteCSV(sampleReport(t), meta)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	parse := func(v string) decimal.Decimal {
		return dec(strings.NewReplacer("$", "", ",", "").Replace(v))
	}
	for col := 1; col < len(Columns); col++ {
		sum := decimal.Zero
		for _, record := range records[2:] {
			sum = sum.Add(parse(record[col]))
		}
		assert.True(t, sum.Equal(parse(records[1][col])), Columns[col])
	}
}

func TestWriteExcelLayout(t *testing.T) {
	report := sampleReport(t)
	report.ClinicianName = "Ada Reyes"
	body, err := WriteExcel(report, meta)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	raw := excelize.Options{RawCellValue: true}
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheetName, ref, raw)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Northside Counseling", cell("A1"))
	assert.Equal(t, "Income Report: Ada Reyes", cell("A2"))
	assert.Equal(t, "Period: 2024-01-01 to 2024-01-02", cell("A3"))
	assert.Empty(t, cell("A4"))
	assert.Equal(t, "Date", cell("A5"))
	assert.Equal(t, "Net Income", cell("E5"))
	assert.Equal(t, "Totals", cell("A6"))
	assert.Equal(t, "1324.5", cell("B6"))
	assert.Equal(t, "2024-01-01", cell("A7"))
	assert.Equal(t, "2024-01-02", cell("A8"))
	assert.Equal(t, "50", cell("C8"))

	totalsStyle, err := f.GetCellStyle(sheetName, "B6")
	require.NoError(t, err)
	dataStyle, err := f.GetCellStyle(sheetName, "B7")
	require.NoError(t, err)
	assert.NotZero(t, totalsStyle)
	assert.NotZero(t, dataStyle)
	assert.NotEqual(t, totalsStyle, dataStyle)
}

type fakePDF struct {
	got pdf.StatementData
	err error
}

func (f *fakePDF) GenerateIncomeStatement(ctx context.Context, data pdf.StatementData) (io.Reader, error) {
	f.got = data
	if f.err != nil {
		return nil, f.err
	}
	return strings.NewReader("%PDF-1.3 fake"), nil
}

func TestRendererIncome(t *testing.T) {
	provider := &fakePDF{}
	r := NewRenderer(provider, clock.NewFakeClock(time.Date(2024, time.January, 3, 9, 0, 0, 0, time.UTC)))
	ctx := context.Background()
	report := sampleReport(t)

	file, err := r.Income(ctx, FormatCSV, report, meta)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeCSV, file.ContentType)
	assert.Equal(t, "income-report-2024-01-01-2024-01-02.csv", file.Name)

	file, err = r.Income(ctx, FormatExcel, report, meta)
	require.NoError(t, err)
	assert.Equal(t, ContentTypeExcel, file.ContentType)
	assert.NotEmpty(t, file.Body)

	file, err = r.Income(ctx, FormatPDF, report, meta)
	require.NoError(t, err)
	assert.Equal(t, ContentTypePDF, file.ContentType)
	assert.Equal(t, "%PDF-1.3 fake", string(file.Body))
	assert.Equal(t, "2024-01-03 09:00 UTC", provider.got.GeneratedAt)
	assert.Equal(t, "Totals", provider.got.Totals.Label)
	assert.Equal(t, []string{"$1,324.50", "$1,450.00", "$840.33", "$609.67"}, provider.got.Totals.Values)
	require.Len(t, provider.got.Rows, 2)

	_, err = r.Income(ctx, Format("xml"), report, meta)
	assert.ErrorIs(t, err, analytics.ErrInvalidFormat)

	provider.err = errors.New("font missing")
	_, err = r.Income(ctx, FormatPDF, report, meta)
	assert.EqualError(t, err, "font missing")
}
