package main

import (
	"context"
	"database/sql"
	root "intake"
	"intake/internal/config"
	"intake/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that brings the intake
// tables (goose) and the job queue tables (river) to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			goose.SetBaseFS(root.Migrations)
			goose.SetLogger(goose.NopLogger())

			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}
			if err := goose.UpContext(ctx, db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			version, err := goose.GetDBVersionContext(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not read schema version", zap.Error(err))
			}
			logger.Info(ctx, "intake tables migrated", zap.Int64("version", version))

			migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
			if err != nil {
				logger.Fatal(ctx, "could not create river queue migrator", zap.Error(err))
			}
			res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
			}
			for _, v := range res.Versions {
				logger.Info(ctx, "river queue migration applied", zap.Int("version", v.Version), zap.String("name", v.Name))
			}
		},
	}

	return cmd
}
