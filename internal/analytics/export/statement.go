package export

import (
	"time"

	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/providers/pdf"
)

// Statement formats a report for the PDF provider using the same columns and currency
// rendering as the CSV export.
func Statement(report analytics.IncomeReport, meta Meta, generatedAt time.Time) pdf.StatementData {
	rows := make([]pdf.StatementRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		rows = append(rows, statementRow(meta, row.Label, row))
	}
	return pdf.StatementData{
		PracticeName: meta.PracticeName,
		Title:        reportTitle(report),
		Period:       periodLabel(report),
		GeneratedAt:  generatedAt.UTC().Format("2006-01-02 15:04 MST"),
		Columns:      Columns,
		Totals:       statementRow(meta, "Totals", report.Totals),
		Rows:         rows,
	}
}

func statementRow(meta Meta, label string, row analytics.IncomeRow) pdf.StatementRow {
	record := csvRecord(meta, label, row)
	return pdf.StatementRow{Label: record[0], Values: record[1:]}
}
