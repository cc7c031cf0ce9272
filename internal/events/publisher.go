package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"
)

// OrderPlaced is published to Kafka after a successful checkout.
type OrderPlaced struct {
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	TotalCents int       `json:"total_cents"`
	Currency   string    `json:"currency"`
	ItemCount  int       `json:"item_count"`
	PlacedAt   time.Time `json:"placed_at"`
}

// Publisher sends order events. A nil *KafkaPublisher is safe to use and
// drops events, so the broker stays optional in dev.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error
}

type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *slog.Logger) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return &KafkaPublisher{producer: producer, topic: topic, log: log}, nil
}

func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, ev OrderPlaced) error {
	if p == nil {
		return nil
	}
	_ = ctx

	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.OrderID),
		Value: sarama.ByteEncoder(b),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send order event: %w", err)
	}

	p.log.Info("order_event_published",
		slog.String("order_id", ev.OrderID),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
