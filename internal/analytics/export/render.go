package export

import (
	"context"
	"errors"
	"io"

	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/clock"
	"github.com/smallbiznis/praxis/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("analytics.export",
	fx.Provide(NewRenderer),
)

// Renderer turns a full-range income report into a file in any supported format.
type Renderer struct {
	pdf   pdf.Provider
	clock clock.Clock
}

func NewRenderer(p pdf.Provider, c clock.Clock) *Renderer {
	return &Renderer{pdf: p, clock: c}
}

func (r *Renderer) Income(ctx context.Context, format Format, report analytics.IncomeReport, meta Meta) (File, error) {
	var (
		body []byte
		err  error
	)
	switch format {
	case FormatCSV:
		body, err = WriteCSV(report, meta)
	case FormatExcel:
		body, err = WriteExcel(report, meta)
	case FormatPDF:
		body, err = r.writePDF(ctx, report, meta)
	default:
		return File{}, analytics.ErrInvalidFormat
	}
	if err != nil {
		return File{}, err
	}
	return File{
		Name:        Filename(report, format),
		ContentType: format.ContentType(),
		Body:        body,
	}, nil
}

func (r *Renderer) writePDF(ctx context.Context, report analytics.IncomeReport, meta Meta) ([]byte, error) {
	if r.pdf == nil {
		return nil, errors.New("pdf provider not configured")
	}
	reader, err := r.pdf.GenerateIncomeStatement(ctx, Statement(report, meta, r.clock.Now()))
	if err != nil {
		return nil, err
	}
	if reader == nil {
		return nil, errors.New("pdf provider returned no document")
	}
	return io.ReadAll(reader)
}
