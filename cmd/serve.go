package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bandhub/band-management-backend/database"
	"github.com/bandhub/band-management-backend/internal/notification"
	"github.com/bandhub/band-management-backend/routes"
	"github.com/bandhub/band-management-backend/utils"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the reminder scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(contextOf(cmd))
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "Do not run schema migrations on startup")
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	if !skipMigrate {
		if err := database.Migrate(db, routes.Models()...); err != nil {
			return err
		}
		log.Info("database migrations completed")
	}

	rdb, err := utils.NewRedis(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	hub := notification.NewHub()
	publishers := []notification.Publisher{hub}
	if cfg.KafkaEnabled() {
		kp := notification.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kp.Close()
		publishers = append(publishers, kp)
		log.Info("kafka publishing enabled", "topic", cfg.KafkaTopic)
	}
	notifier := notification.NewService(publishers...)

	svc := routes.NewServices(cfg, db, notifier)

	scheduler, err := notification.NewReminderScheduler(cfg.ReminderCron, time.Duration(cfg.ReminderWindowHours)*time.Hour, svc.Events, notifier)
	if err != nil {
		return err
	}
	go func() {
		if err := scheduler.Run(ctx); err != nil {
			log.Error("reminder scheduler stopped", "err", err)
		}
	}()

	router := routes.NewRouter(cfg)
	if err := routes.Setup(router, cfg, svc, hub, rdb); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "port", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
