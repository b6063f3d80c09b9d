package main

import (
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/valeriaulyamaeva/due-reminders/internal/config"
	"github.com/valeriaulyamaeva/due-reminders/internal/database"
	"github.com/valeriaulyamaeva/due-reminders/internal/reminder"
)

func newScanCmd() *cobra.Command {
	var day string
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Run one reminder scan and print its summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			now, err := scanTime(day, cfg.Reminder.Location)
			if err != nil {
				return err
			}

			pool, err := database.ConnectDB(cmd.Context(), cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()
			store := database.NewStore(pool)

			scanner := reminder.NewScanner(store, store, reminder.NewEmitter(store), cfg.Reminder.Location, log.Default())
			summary, err := scanner.Scan(cmd.Context(), now)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&day, "date", "", "scan as if today were this day (YYYY-MM-DD)")
	return cmd
}

// scanTime returns now, or the start of day in loc when a day is given.
func scanTime(day string, loc *time.Location) (time.Time, error) {
	if day == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("--date %q: %w", day, err)
	}
	return t, nil
}
