package pdf

import (
	"context"
	"io"
	"testing"

	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIncomeStatement(t *testing.T) {
	p := New()
	data := StatementData{
		PracticeName: "Northside Counseling",
		Title:        "Income Report",
		Period:       "Period: 2024-01-01 to 2024-01-02",
		GeneratedAt:  "2024-01-03 09:00 UTC",
		Columns:      []string{"Date", "Client Payments", "Gross Income", "Clinician Cut", "Net Income"},
		Totals:       StatementRow{Label: "Totals", Values: []string{"$190.00", "$190.00", "$84.00", "$106.00"}},
		Rows: []StatementRow{
			{Label: "2024-01-01", Values: []string{"$100.00", "$140.00", "$84.00", "$56.00"}},
			{Label: "2024-01-02", Values: []string{"$90.00", "$50.00", "$0.00", "$50.00"}},
		},
	}

	r, err := p.GenerateIncomeStatement(context.Background(), data)
	require.NoError(t, err)
	body, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.True(t, len(body) > 4)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestTableRowFillsGrid(t *testing.T) {
	cols := tableRow([]string{"Date", "a", "b", "c", "d"}, props.Text{Size: 9})
	require.Len(t, cols, 5)

	cols = tableRow(nil, props.Text{Size: 9})
	require.Len(t, cols, 1)
}
