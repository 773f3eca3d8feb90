package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/google/uuid"
	"github.com/nguyentranbao-ct/price-scout/internal/config"
)

// Publisher emits domain events. The noop variant is used when Kafka is
// disabled so callers never branch on configuration.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewPublisher(cfg config.KafkaConfig) (Publisher, error) {
	if !cfg.Enabled {
		return &noopPublisher{}, nil
	}

	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Retry.Max = 3
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &publisher{
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

func (p *publisher) Publish(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.UserID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send event: %w", err)
	}

	log.Debugw(ctx, "published event",
		"event_type", event.Type,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *publisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

func (*noopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (*noopPublisher) Close() error { return nil }
