package export

import (
	"github.com/shopspring/decimal"
	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Income Report"

// Row layout of the spreadsheet.
const (
	titleRow  = 1
	reportRow = 2
	periodRow = 3
	headerRow = 5
	totalsRow = 6
	firstData = 7
)

// WriteExcel renders the title rows, the header, a bold filled Totals row, then data rows.
func WriteExcel(report analytics.IncomeReport, meta Meta) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	styles, err := newSheetStyles(f, meta.CurrencySymbol)
	if err != nil {
		return nil, err
	}

	if err := setRow(f, titleRow, meta.PracticeName); err != nil {
		return nil, err
	}
	if err := setRow(f, reportRow, reportTitle(report)); err != nil {
		return nil, err
	}
	if err := setRow(f, periodRow, periodLabel(report)); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", styles.title); err != nil {
		return nil, err
	}

	header := make([]any, 0, len(Columns))
	for _, c := range Columns {
		header = append(header, c)
	}
	if err := setRow(f, headerRow, header...); err != nil {
		return nil, err
	}
	if err := styleRow(f, headerRow, styles.header, styles.header); err != nil {
		return nil, err
	}

	if err := setRow(f, totalsRow, incomeCells("Totals", report.Totals)...); err != nil {
		return nil, err
	}
	if err := styleRow(f, totalsRow, styles.totalsLabel, styles.totals); err != nil {
		return nil, err
	}

	for i, row := range report.Rows {
		r := firstData + i
		if err := setRow(f, r, incomeCells(row.Label, row)...); err != nil {
			return nil, err
		}
		if err := styleRow(f, r, 0, styles.currency); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheetName, "A", "A", 14); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "B", "E", 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type sheetStyles struct {
	title       int
	header      int
	totalsLabel int
	totals      int
	currency    int
}

func newSheetStyles(f *excelize.File, symbol string) (sheetStyles, error) {
	numFmt := `"` + symbol + `"#,##0.00`
	fill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E7EEF7"}}

	var s sheetStyles
	var err error
	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}}); err != nil {
		return s, err
	}
	if s.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, err
	}
	if s.totalsLabel, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Fill: fill}); err != nil {
		return s, err
	}
	if s.totals, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, Fill: fill, CustomNumFmt: &numFmt}); err != nil {
		return s, err
	}
	if s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt}); err != nil {
		return s, err
	}
	return s, nil
}

func setRow(f *excelize.File, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

// styleRow applies labelStyle to column A and valueStyle to the money columns.
func styleRow(f *excelize.File, row, labelStyle, valueStyle int) error {
	first, _ := excelize.CoordinatesToCellName(1, row)
	from, _ := excelize.CoordinatesToCellName(2, row)
	to, _ := excelize.CoordinatesToCellName(len(Columns), row)
	if labelStyle != 0 {
		if err := f.SetCellStyle(sheetName, first, first, labelStyle); err != nil {
			return err
		}
	}
	return f.SetCellStyle(sheetName, from, to, valueStyle)
}

func incomeCells(label string, row analytics.IncomeRow) []any {
	cells := []any{label}
	for _, v := range rowValues(row) {
		cells = append(cells, cellAmount(v))
	}
	return cells
}

// cellAmount converts a cent-rounded amount for a numeric cell.
func cellAmount(v decimal.Decimal) float64 {
	return v.Round(2).InexactFloat64()
}
