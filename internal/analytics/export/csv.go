package export

import (
	"bytes"
	"encoding/csv"

	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
)

// WriteCSV writes the header, then the Totals row, then one row per bucket.
func WriteCSV(report analytics.IncomeReport, meta Meta) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	if err := w.Write(csvRecord(meta, "Totals", report.Totals)); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		if err := w.Write(csvRecord(meta, row.Label, row)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvRecord(meta Meta, label string, row analytics.IncomeRow) []string {
	record := make([]string, 0, len(Columns))
	record = append(record, label)
	for _, v := range rowValues(row) {
		record = append(record, FormatCurrency(meta.CurrencySymbol, v))
	}
	return record
}
