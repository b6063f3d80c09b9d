package main

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/valeriaulyamaeva/due-reminders/internal/config"
	"github.com/valeriaulyamaeva/due-reminders/internal/database"
	"github.com/valeriaulyamaeva/due-reminders/models"
	"github.com/valeriaulyamaeva/due-reminders/utils"
)

func newSeedCmd() *cobra.Command {
	var (
		count int
		scope string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert fake due records for local development",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := database.ConnectDB(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			today := time.Now().In(cfg.Reminder.Location)
			records, err := utils.GenerateDueRecords(cmd.Context(), pool, scope, count, today)
			if err != nil {
				return err
			}
			log.Printf("Добавлено записей к оплате: %d", len(records))
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", 20, "number of due records")
	cmd.Flags().StringVar(&scope, "scope", models.DefaultScope, "scope of the generated records")
	return cmd
}
