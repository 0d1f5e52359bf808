// Package export renders income reports as downloadable files.
package export

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

const (
	ContentTypeCSV   = "text/csv; charset=utf-8"
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF   = "application/pdf"
)

// Columns is the fixed column order of every income export.
var Columns = []string{"Date", "Client Payments", "Gross Income", "Clinician Cut", "Net Income"}

// ParseFormat accepts the spreadsheet formats served by the export endpoint.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatExcel:
		return FormatExcel, nil
	default:
		return "", analytics.ErrInvalidFormat
	}
}

func (f Format) Extension() string {
	switch f {
	case FormatExcel:
		return ".xlsx"
	case FormatPDF:
		return ".pdf"
	default:
		return ".csv"
	}
}

func (f Format) ContentType() string {
	switch f {
	case FormatExcel:
		return ContentTypeExcel
	case FormatPDF:
		return ContentTypePDF
	default:
		return ContentTypeCSV
	}
}

// File is a rendered export.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Meta carries practice-level labels for rendered files.
type Meta struct {
	PracticeName   string
	CurrencySymbol string
}

// Filename builds a stable, URL-safe name such as income-report-2024-01-01-2024-01-31.csv.
func Filename(report analytics.IncomeReport, format Format) string {
	base := fmt.Sprintf("income report %s %s", report.Range.StartDate(), report.Range.EndDate())
	if report.ClinicianName != "" {
		base += " " + report.ClinicianName
	}
	return slug.Make(base) + format.Extension()
}

// FormatCurrency renders an amount as "$1,234.56"; negatives as "-$1,234.56".
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	rounded := amount.Round(2)
	_, cents, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	whole := message.NewPrinter(language.English).Sprintf("%d", rounded.Abs().IntPart())
	return sign + symbol + whole + "." + cents
}

func reportTitle(report analytics.IncomeReport) string {
	if report.ClinicianName != "" {
		return "Income Report: " + report.ClinicianName
	}
	return "Income Report"
}

func periodLabel(report analytics.IncomeReport) string {
	return fmt.Sprintf("Period: %s to %s", report.Range.StartDate(), report.Range.EndDate())
}

func rowValues(row analytics.IncomeRow) []decimal.Decimal {
	return []decimal.Decimal{row.ClientPayments, row.GrossIncome, row.ClinicianCut, row.NetIncome}
}
