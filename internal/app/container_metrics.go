package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"vibe-shop/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	PaymentPublishFailures prometheus.Counter `name:"payment_events_publish_failures_total"`
	EventRetriesTotal      prometheus.Counter `name:"payment_events_retries_total"`
	PaymentsTotal          *prometheus.CounterVec
	DeliveryEtaDays        prometheus.Histogram
}

type metricsIn struct {
	dig.In

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	PaymentPublishFailures prometheus.Counter `name:"payment_events_publish_failures_total"`
	EventRetriesTotal      prometheus.Counter `name:"payment_events_retries_total"`
	PaymentsTotal          *prometheus.CounterVec
	DeliveryEtaDays        prometheus.Histogram
}

// newMetrics builds unregistered collectors.
func newMetrics() metricsOut {
	return metricsOut{
		RateLimitExceededTotal: metrics.NewRateLimitExceededTotal(),
		PaymentPublishFailures: metrics.NewPaymentPublishFailuresTotal(),
		EventRetriesTotal:      metrics.NewEventRetriesTotal(),
		PaymentsTotal:          metrics.NewPaymentsTotal(),
		DeliveryEtaDays:        metrics.NewDeliveryEtaDays(),
	}
}

// provideMetrics registers collectors with the default registerer.
// Collectors registered earlier are reused.
func provideMetrics() (metricsOut, error) {
	m := newMetrics()
	var err error

	if m.RateLimitExceededTotal, err = register("rate_limit_exceeded_total", m.RateLimitExceededTotal); err != nil {
		return metricsOut{}, err
	}
	if m.PaymentPublishFailures, err = register("payment_events_publish_failures_total", m.PaymentPublishFailures); err != nil {
		return metricsOut{}, err
	}
	if m.EventRetriesTotal, err = register("payment_events_retries_total", m.EventRetriesTotal); err != nil {
		return metricsOut{}, err
	}
	if m.PaymentsTotal, err = register("payments_total", m.PaymentsTotal); err != nil {
		return metricsOut{}, err
	}
	if m.DeliveryEtaDays, err = register("delivery_eta_days", m.DeliveryEtaDays); err != nil {
		return metricsOut{}, err
	}
	return m, nil
}

func register[T prometheus.Collector](name string, c T) (T, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("register %s: %w", name, err)
}
