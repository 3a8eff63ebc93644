package main

import (
	"github.com/spf13/cobra"

	"realestate-backend/internal/infrastructure/db"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and indexes, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			gdb, err := db.OpenGorm(cfg, log)
			if err != nil {
				return err
			}
			if err := db.Migrate(gdb); err != nil {
				return err
			}
			log.Info("migrate: done", "driver", cfg.DBDriver)
			return nil
		},
	}
}
