package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/equiv/internal/logger"
	"github.com/sbilibin2017/equiv/internal/models"
)

// DefaultRatesTopic receives one message per successful rate fetch.
const DefaultRatesTopic = "exchange-rates"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// ExchangeRatesKafkaPublisher announces new rate snapshots on a Kafka topic.
type ExchangeRatesKafkaPublisher struct {
	writer messageWriter
}

// NewExchangeRatesKafkaWriter builds a writer for the given brokers and topic.
func NewExchangeRatesKafkaWriter(brokers []string, topic string) *kafka.Writer {
	if topic == "" {
		topic = DefaultRatesTopic
	}
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// NewExchangeRatesKafkaPublisher creates a publisher on top of a kafka writer.
func NewExchangeRatesKafkaPublisher(writer messageWriter) *ExchangeRatesKafkaPublisher {
	return &ExchangeRatesKafkaPublisher{writer: writer}
}

// PublishSnapshot writes the snapshot as JSON keyed by its base currency.
func (p *ExchangeRatesKafkaPublisher) PublishSnapshot(ctx context.Context, snapshot models.ExchangeRateSnapshot) error {
	value, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(snapshot.Base),
		Value: value,
		Time:  snapshot.FetchedAt,
	})

	logger.Log.Infow("published exchange rates",
		"key", snapshot.Base,
		"currencies", len(snapshot.Rates),
		"error", err,
	)

	return err
}
