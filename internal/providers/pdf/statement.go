package pdf

import (
	"bytes"
	"context"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// StatementData is a pre-formatted income statement; every amount is already a display string.
type StatementData struct {
	PracticeName string
	Title        string
	Period       string
	GeneratedAt  string

	Columns []string
	Totals  StatementRow
	Rows    []StatementRow
}

type StatementRow struct {
	Label  string
	Values []string
}

type PDFProvider struct{}

func New() Provider {
	return &PDFProvider{}
}

func (p *PDFProvider) GenerateIncomeStatement(ctx context.Context, data StatementData) (io.Reader, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, data.PracticeName, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(10,
		text.NewCol(12, data.Title, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)
	m.AddRow(14,
		col.New(8).Add(
			text.New(data.Period, props.Text{Top: 0}),
			text.New("Generated: "+data.GeneratedAt, props.Text{Top: 5, Size: 8}),
		),
		col.New(4),
	)

	// Totals block
	m.AddRow(8,
		text.NewCol(12, "Summary", props.Text{Style: fontstyle.Bold, Size: 11}),
	)
	for i, name := range valueColumns(data.Columns) {
		value := ""
		if i < len(data.Totals.Values) {
			value = data.Totals.Values[i]
		}
		m.AddRow(7,
			col.New(6),
			text.NewCol(3, name, props.Text{Size: 9}),
			text.NewCol(3, value, props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		)
	}

	m.AddRow(6, col.New(12))

	// Bucket table
	m.AddRow(10, tableRow(data.Columns, props.Text{Style: fontstyle.Bold, Size: 9})...)
	m.AddRow(8, tableRow(append([]string{data.Totals.Label}, data.Totals.Values...), props.Text{Style: fontstyle.Bold, Size: 9})...)
	for _, row := range data.Rows {
		m.AddRow(7, tableRow(append([]string{row.Label}, row.Values...), props.Text{Size: 9})...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return bytes.NewReader(doc.GetBytes()), nil
}

func valueColumns(columns []string) []string {
	if len(columns) <= 1 {
		return nil
	}
	return columns[1:]
}

// tableRow lays out a label column followed by right-aligned value columns over 12 grid units.
func tableRow(cells []string, style props.Text) []core.Col {
	if len(cells) == 0 {
		return []core.Col{col.New(12)}
	}
	valueWidth := 2
	labelWidth := 12 - valueWidth*(len(cells)-1)
	if labelWidth < valueWidth {
		labelWidth, valueWidth = 12/len(cells), 12/len(cells)
	}

	cols := make([]core.Col, 0, len(cells))
	cols = append(cols, text.NewCol(labelWidth, cells[0], style))
	right := style
	right.Align = align.Right
	for _, cell := range cells[1:] {
		cols = append(cols, text.NewCol(valueWidth, cell, right))
	}
	return cols
}
