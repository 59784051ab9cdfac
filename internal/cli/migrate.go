package cli

import (
	"context"
	"fmt"

	gormrepo "farmerbot/internal/adapter/repo/gorm"
	"farmerbot/internal/config"
	"farmerbot/migrations"

	"github.com/spf13/cobra"
)

func (a *App) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply decision journal migrations to " + config.EnvDSN,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			return a.migrate(cmd.Context(), cfg)
		},
	}
}

func (a *App) migrate(ctx context.Context, cfg config.Config) error {
	if cfg.DSN == "" {
		return fmt.Errorf("%s is required", config.EnvDSN)
	}
	db, err := gormrepo.OpenPostgres(cfg.DSN)
	if err != nil {
		return err
	}
	applied, err := gormrepo.ApplyMigrations(ctx, db, migrations.FS)
	for _, v := range applied {
		fmt.Fprintf(a.stdout, "applied %s\n", v)
	}
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		fmt.Fprintln(a.stdout, "schema up to date")
	}
	return nil
}
