package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/valeriaulyamaeva/due-reminders/internal/config"
	"github.com/valeriaulyamaeva/due-reminders/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(*cobra.Command, []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := database.Migrate(cfg.DatabaseURL); err != nil {
				return err
			}
			log.Println("Миграции применены успешно.")
			return nil
		},
	}
}
