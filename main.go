package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/events"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("finance-tracker starting")

	if err := config.LoadDotEnv(".env"); err != nil {
		logger.WithError(err).Fatal("config.LoadDotEnv")
		return
	}

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err := logging.ApplyLevel(logger, envConfig.LogLevel); err != nil {
		logger.WithError(err).Fatal("logging.ApplyLevel")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	publisher := newPublisher(logger, envConfig)
	defer publisher.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, publisher)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.HTTPPort,
			Database: dbStorage,
			Service:  svc,
		}
		return httpRest.Serve(groupCtx)
	})

	if err := group.Wait(); err != nil {
		logger.WithError(err).Error("finance-tracker stopped with error")
		return
	}
	logger.Info("finance-tracker stopped")
}

// newPublisher connects to the broker when one is configured. Events are
// optional, so a failed dial falls back to dropping them.
func newPublisher(logger *logrus.Logger, envConfig *config.Config) events.Publisher {
	if envConfig.AMQPURL == "" {
		return events.NoopPublisher{}
	}

	publisher, err := events.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange)
	if err != nil {
		logger.WithError(err).Warn("events.NewAMQPPublisher")
		return events.NoopPublisher{}
	}
	return publisher
}
