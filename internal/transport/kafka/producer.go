package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"vibe-shop/internal/domain"
	"vibe-shop/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Producer publishes payment events to a topic.
type Producer struct {
	logger   logx.Logger
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates a Producer. It returns (nil, nil) when brokers or topic are not configured.
func NewProducer(logger logx.Logger, brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}
	if logger == nil {
		logger = logx.Nop()
	}

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Timeout = 5 * time.Second

	p, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &Producer{logger: logger, producer: p, topic: topic}, nil
}

// PublishPayment sends e keyed by order id, so events of one order stay ordered.
func (p *Producer) PublishPayment(ctx context.Context, e domain.PaymentEvent) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(FromDomain(e))
	if err != nil {
		return fmt.Errorf("encode payment event: %w", err)
	}
	key := e.OrderID
	if key == "" {
		key = uuid.NewString()
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte("payment." + string(e.Status))},
		},
	})
	if err != nil {
		return fmt.Errorf("send payment event: %w", err)
	}
	p.logger.Debug("payment event published",
		logx.String("order_id", e.OrderID),
		logx.Any("partition", partition),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the underlying producer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
