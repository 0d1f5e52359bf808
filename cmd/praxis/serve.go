package main

import (
	"time"

	"github.com/smallbiznis/praxis/internal/migration"
	"github.com/smallbiznis/praxis/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newServeCommand() *cobra.Command {
	var (
		shutdownTimeout time.Duration
		autoMigrate     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the analytics HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []fx.Option{
				coreModules(),
				server.Module,
				fx.StopTimeout(shutdownTimeout),
			}
			if autoMigrate {
				opts = append(opts, migration.Module)
			}

			app := fx.New(opts...)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}

	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "Maximum time to wait for graceful shutdown")
	cmd.Flags().BoolVar(&autoMigrate, "migrate", false, "Apply the ledger schema before serving")

	return cmd
}
