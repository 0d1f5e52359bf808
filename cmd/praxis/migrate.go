package main

import (
	"context"
	"fmt"
	"time"

	"github.com/smallbiznis/praxis/internal/config"
	"github.com/smallbiznis/praxis/internal/migration"
	"github.com/smallbiznis/praxis/internal/observability"
	"github.com/smallbiznis/praxis/pkg/db"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newMigrateCommand() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded ledger schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(
				config.Module,
				observability.Module,
				db.Module,
				migration.Module,
				fx.NopLogger,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := app.Start(ctx); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
			defer func() { _ = app.Stop(context.Background()) }()

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations executed successfully.")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Maximum time to wait for migrations")

	return cmd
}
