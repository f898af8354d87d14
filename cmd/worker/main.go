package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/flightinventory/config"
	"github.com/Domenick1991/flightinventory/internal/email"
	"github.com/Domenick1991/flightinventory/internal/kafka"
	"github.com/Domenick1991/flightinventory/internal/logger"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfgPath).Msg("load config")
	}
	lg := logger.New(cfg.Log)

	if !cfg.Kafka.Enabled() || cfg.Kafka.NotificationsTopic == "" {
		lg.Fatal().Msg("worker needs kafka brokers and a notifications topic")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, lg)
	defer consumer.Close()

	sender := email.NewSender(lg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info().Str("topic", cfg.Kafka.NotificationsTopic).Msg("consuming notifications")
		return consumer.ConsumeEvents(gctx, sender.Send)
	})

	if err := g.Wait(); err != nil {
		lg.Error().Err(err).Msg("consumer stopped")
		return
	}
	lg.Info().Msg("worker stopped")
}
