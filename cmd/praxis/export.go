package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	analyticsdomain "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/analytics/export"
	"github.com/smallbiznis/praxis/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render reports to files without the HTTP server",
	}

	cmd.AddCommand(newExportIncomeCommand())

	return cmd
}

type exportIncomeOptions struct {
	start     string
	end       string
	clinician string
	format    string
	out       string
	timeout   time.Duration
}

func newExportIncomeCommand() *cobra.Command {
	var opts exportIncomeOptions

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Export the income report as csv, excel or pdf",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseExportFormat(opts.format)
			if err != nil {
				return err
			}

			var (
				svc       analyticsdomain.Service
				renderer  *export.Renderer
				reporting *config.ReportingConfigHolder
			)
			app := fx.New(
				coreModules(),
				fx.Populate(&svc, &renderer, &reporting),
				fx.NopLogger,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			if err := app.Start(ctx); err != nil {
				return err
			}
			defer func() { _ = app.Stop(context.Background()) }()

			file, err := renderIncome(ctx, svc, renderer, reporting.Get(), format, opts)
			if err != nil {
				return err
			}

			path := opts.out
			if strings.TrimSpace(path) == "" {
				path = file.Name
			}
			if err := os.WriteFile(path, file.Body, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", filepath.Clean(path), len(file.Body))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "first day of the report (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.end, "end", "", "last day of the report (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.clinician, "clinician", "", "limit the report to one clinician id")
	cmd.Flags().StringVar(&opts.format, "format", string(export.FormatCSV), "csv, excel or pdf")
	cmd.Flags().StringVar(&opts.out, "out", "", "output file (defaults to the generated file name)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "Maximum time for the export")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// parseExportFormat accepts pdf on top of the spreadsheet formats served over HTTP.
func parseExportFormat(raw string) (export.Format, error) {
	if strings.EqualFold(strings.TrimSpace(raw), string(export.FormatPDF)) {
		return export.FormatPDF, nil
	}
	format, err := export.ParseFormat(raw)
	if err != nil {
		return "", fmt.Errorf("format must be one of: csv, excel, pdf")
	}
	return format, nil
}

func renderIncome(ctx context.Context, svc analyticsdomain.Service, renderer *export.Renderer, reporting config.ReportingConfig, format export.Format, opts exportIncomeOptions) (export.File, error) {
	report, err := svc.GetIncomeReport(ctx, analyticsdomain.IncomeRequest{
		StartDate:   opts.start,
		EndDate:     opts.end,
		ClinicianID: opts.clinician,
	})
	if err != nil {
		return export.File{}, err
	}
	return renderer.Income(ctx, format, report, export.Meta{
		PracticeName:   reporting.PracticeName,
		CurrencySymbol: reporting.CurrencySymbol,
	})
}
