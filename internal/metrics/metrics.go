package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewPaymentsTotal counts mock payments by status (succeeded, declined, rejected) and card brand.
func NewPaymentsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_total",
		Help: "Total number of mock card payments by outcome and brand",
	}, []string{"status", "brand"})
}

// NewPaymentPublishFailuresTotal counts payment events that could not be sent to Kafka.
func NewPaymentPublishFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payment_events_publish_failures_total",
		Help: "Total number of payment events that failed to publish",
	})
}

// NewDeliveryEtaDays observes estimated delivery days of placed orders.
func NewDeliveryEtaDays() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "delivery_eta_days",
		Help:    "Estimated delivery time of placed orders in days",
		Buckets: []float64{1, 2, 3, 5, 7, 10, 14, 21, 28},
	})
}

// NewEventRetriesTotal returns a counter for payment event handler retries in the worker
func NewEventRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "payment_events_retries_total",
		Help: "Total number of retry attempts performed by the payment event consumer",
	})
}
