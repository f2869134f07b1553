package main

import (
	"fmt"

	"github.com/SscSPs/alsabqon_app/internal/platform/config"
	"github.com/SscSPs/alsabqon_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back the PostgreSQL schema",
		Args:  cobra.ExactArgs(1),
		ValidArgs: []string{
			string(database.MigrateUp),
			string(database.MigrateDown),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrationDirection(args[0])
			if direction != database.MigrateUp && direction != database.MigrateDown {
				return fmt.Errorf("unknown migration direction %q", args[0])
			}
			if a.cfg.DatabaseURL == "" {
				return fmt.Errorf("PGSQL_URL must be set to run migrations (STORAGE_DRIVER=%s)", config.StoragePostgres)
			}
			return database.RunMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, direction)
		},
	}
	return cmd
}
