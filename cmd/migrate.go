package main

import (
	"context"

	root "campaigner"
	"campaigner/internal/config"
	"campaigner/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the embedded schema migrations and the job queue
// migrations, then reports the versions it moved between.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the database and the job queue tables to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			report, err := strg.Migrate(ctx, root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}

			if report.SchemaFrom == report.SchemaTo && len(report.QueueApplied) == 0 {
				logger.Info(ctx, "database is up to date", zap.Int64("schemaVersion", report.SchemaTo))

				return
			}
			logger.Info(ctx, "database migrated",
				zap.Int64("schemaFrom", report.SchemaFrom),
				zap.Int64("schemaTo", report.SchemaTo),
				zap.Ints("queueVersions", report.QueueApplied))
		},
	}
}
