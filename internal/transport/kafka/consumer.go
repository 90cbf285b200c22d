package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/prometheus/client_golang/prometheus"

	"vibe-shop/internal/domain"
	"vibe-shop/internal/logx"
)

// HandleFunc processes a single payment event from Kafka
type HandleFunc func(context.Context, domain.PaymentEvent) error

const (
	defaultHandleAttempts = 3
	defaultRetryDelay     = 500 * time.Millisecond
)

var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	logger     logx.Logger
	group      sarama.ConsumerGroup
	topic      string
	handler    HandleFunc
	attempts   int
	retryDelay time.Duration
	retries    prometheus.Counter
}

// NewConsumer creates a Kafka consumer. It returns (nil, nil) when brokers,
// group or topic are not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		logger:     logger,
		group:      group,
		topic:      topic,
		handler:    h,
		attempts:   defaultHandleAttempts,
		retryDelay: defaultRetryDelay,
	}, nil
}

// WithRetryCounter counts handler retries in c.
func (c *Consumer) WithRetryCounter(counter prometheus.Counter) *Consumer {
	if c != nil {
		c.retries = counter
	}
	return c
}

// Run consumes until ctx is done.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	go c.drainErrors(ctx)

	h := &groupHandler{c: c}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Second):
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) drainErrors(ctx context.Context) {
	errs := c.group.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			c.logger.Warn("kafka group error", logx.Err(err))
		}
	}
}

// Close closes the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var dto PaymentEventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			h.c.logger.Warn("kafka bad json",
				logx.Int64("offset", msg.Offset),
				logx.Err(err),
			)
			sess.MarkMessage(msg, "")
			continue
		}
		ev := ToDomain(dto)
		if ev.OrderID == "" {
			h.c.logger.Warn("kafka empty order_id", logx.Int64("offset", msg.Offset))
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.c.handle(sess.Context(), ev); err != nil {
			if sess.Context().Err() != nil {
				// redelivered after rebalance or restart
				return nil
			}
			h.c.logger.Error("kafka handle failed, skipping message",
				logx.String("order_id", ev.OrderID),
				logx.String("status", string(ev.Status)),
				logx.Err(err),
			)
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}

// handle runs the handler up to c.attempts times. Permanent errors are not retried.
func (c *Consumer) handle(ctx context.Context, ev domain.PaymentEvent) error {
	attempts := c.attempts
	if attempts <= 0 {
		attempts = 1
	}
	var err error
	for i := 1; i <= attempts; i++ {
		if err = c.handler(ctx, ev); err == nil {
			return nil
		}
		var perm PermanentError
		if errors.As(err, &perm) || i == attempts {
			return err
		}
		if c.retries != nil {
			c.retries.Inc()
		}
		c.logger.Warn("kafka handle failed, retrying",
			logx.String("order_id", ev.OrderID),
			logx.Int("attempt", i),
			logx.Err(err),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
	return err
}
