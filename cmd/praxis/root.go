package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/smallbiznis/praxis/internal/analytics"
	"github.com/smallbiznis/praxis/internal/analytics/export"
	"github.com/smallbiznis/praxis/internal/clock"
	"github.com/smallbiznis/praxis/internal/config"
	"github.com/smallbiznis/praxis/internal/ledger"
	"github.com/smallbiznis/praxis/internal/observability"
	"github.com/smallbiznis/praxis/internal/providers"
	"github.com/smallbiznis/praxis/pkg/db"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "praxis",
	Short: "Financial analytics and reporting for a practice back office.",
	Long: `Praxis reads the practice ledger (appointments, invoices, payments) and serves
income, outstanding balance and dashboard reports over HTTP or as exported files.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "reporting config file (reporting.yml)")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newExportCommand())
}

// coreModules wires everything a report needs short of the HTTP server.
func coreModules() fx.Option {
	return fx.Options(
		config.Module,
		fx.Decorate(withReportingConfigPath),
		observability.Module,
		clock.Module,
		db.Module,
		ledger.Module,
		providers.Module,
		analytics.Module,
		export.Module,
	)
}

func withReportingConfigPath(cfg config.Config) config.Config {
	if path := strings.TrimSpace(cfgFile); path != "" {
		cfg.ReportingConfigPath = filepath.Dir(path)
	}
	return cfg
}
