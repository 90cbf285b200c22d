package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"vibe-shop/internal/config"
	"vibe-shop/internal/logx"
	"vibe-shop/internal/repository"
	"vibe-shop/internal/service/delivery"
	"vibe-shop/internal/service/orders"
	"vibe-shop/internal/transport/kafka"
)

type consumerIn struct {
	dig.In

	Cfg     *config.Config
	Logger  logx.Logger
	Handler kafka.HandleFunc
	Retries prometheus.Counter `name:"payment_events_retries_total"`
}

func newConsumer(in consumerIn) (*kafka.Consumer, error) {
	c, err := kafka.NewConsumer(in.Logger, in.Cfg.Kafka.Brokers, in.Cfg.Kafka.GroupID, in.Cfg.Kafka.PaymentsTopic, in.Handler)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return c.WithRetryCounter(in.Retries), nil
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		newEstimator,
		func(repo *repository.OrderRepo, est *delivery.Estimator, logger logx.Logger) *orders.Processor {
			return orders.NewProcessor(repo, est, logger)
		},
		func(cfg *config.Config, p *orders.Processor) kafka.HandleFunc {
			return makePaymentEvents(p, cfg.OperationTimeout)
		},
		newConsumer,
	)
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := container.Provide(provideMetrics); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildWorker builds the payment event worker container
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

// MustBuildWorkerContainer builds the payment event worker container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}
