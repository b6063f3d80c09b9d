package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/valeriaulyamaeva/due-reminders/internal/config"
	"github.com/valeriaulyamaeva/due-reminders/internal/database"
	"github.com/valeriaulyamaeva/due-reminders/internal/reminder"
	"github.com/valeriaulyamaeva/due-reminders/internal/routes"
	"github.com/valeriaulyamaeva/due-reminders/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("Ошибка: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "due-reminders",
		Short:         "Payment due reminders and notification API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newScanCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the daily reminder scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending migrations before start")
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if migrate {
		if err := database.Migrate(cfg.DatabaseURL); err != nil {
			return err
		}
	}

	pool, err := database.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()
	store := database.NewStore(pool)

	scanner := reminder.NewScanner(store, store, reminder.NewEmitter(store), cfg.Reminder.Location, log.Default())
	scheduler, err := reminder.NewScheduler(scanner, cfg.Reminder.Cron, cfg.Reminder.Location,
		reminder.WithTimeout(cfg.Reminder.ScanTimeout))
	if err != nil {
		return err
	}
	scheduler.Start()

	router := routes.SetupRouter(routes.Dependencies{
		Notifications: service.NewNotifications(store, store),
		DueRecords:    store,
		Scans:         scheduler,
		DB:            store,
	}, cfg.CORSOrigins...)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("HTTP-сервер запущен на %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Printf("Ошибка остановки HTTP-сервера: %v", shutdownErr)
	}
	if stopErr := scheduler.Stop(shutdownCtx); stopErr != nil {
		log.Printf("Ошибка остановки планировщика напоминаний: %v", stopErr)
	}
	return err
}
