package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/bandhub/band-management-backend/internal/notification"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Log setlist changes published to Kafka",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.KafkaEnabled() {
			return errors.New("KAFKA_BROKERS is not set")
		}

		ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info("consuming setlist changes", "topic", cfg.KafkaTopic, "group", cfg.KafkaGroupID)
		consumer := notification.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, cfg.KafkaTopic, notification.LogChange)
		return consumer.Run(ctx)
	},
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
