package facades

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/equiv/internal/models"
)

// --- Fake kafka writer ---
type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func TestPublishSnapshot(t *testing.T) {
	w := &fakeWriter{}
	p := NewExchangeRatesKafkaPublisher(w)

	snap := models.ExchangeRateSnapshot{
		Base:      "USD",
		Rates:     map[string]float64{"USD": 1, "EUR": 0.9},
		FetchedAt: time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishSnapshot(context.Background(), snap))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, []byte("USD"), msg.Key)
	assert.Equal(t, snap.FetchedAt, msg.Time)

	var got models.ExchangeRateSnapshot
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, snap, got)
}

func TestPublishSnapshot_Error(t *testing.T) {
	p := NewExchangeRatesKafkaPublisher(&fakeWriter{err: errors.New("broker down")})
	err := p.PublishSnapshot(context.Background(), models.ExchangeRateSnapshot{Base: "USD"})
	assert.EqualError(t, err, "broker down")
}

func TestNewExchangeRatesKafkaWriter(t *testing.T) {
	w := NewExchangeRatesKafkaWriter([]string{"localhost:9092"}, "")
	defer w.Close()
	assert.Equal(t, DefaultRatesTopic, w.Topic)
	assert.Equal(t, "localhost:9092", w.Addr.String())
}
