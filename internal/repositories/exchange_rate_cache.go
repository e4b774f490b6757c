package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/equiv/internal/logger"
	"github.com/sbilibin2017/equiv/internal/models"
)

// LatestSnapshotKey holds the most recent successful rate fetch.
const LatestSnapshotKey = "exchange_rates:latest"

// ExchangeRateCacheRepository keeps the last good exchange rate snapshot in Redis
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // zero keeps the snapshot forever
}

// NewExchangeRateCacheRepository creates a new repository instance with optional TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetLatestSnapshot returns the cached snapshot, or nil when nothing is cached
func (r *ExchangeRateCacheRepository) GetLatestSnapshot(ctx context.Context) (*models.ExchangeRateSnapshot, error) {
	val, err := r.client.Get(ctx, LatestSnapshotKey).Bytes()
	if err != nil {
		logger.Log.Infow("read cached exchange rates",
			"key", LatestSnapshotKey,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var snapshot models.ExchangeRateSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		logger.Log.Infow("decode cached exchange rates",
			"key", LatestSnapshotKey,
			"value", string(val),
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("read cached exchange rates",
		"key", LatestSnapshotKey,
		"currencies", len(snapshot.Rates),
		"fetched_at", snapshot.FetchedAt,
		"error", nil,
	)

	return &snapshot, nil
}

// SaveSnapshot replaces the cached snapshot
func (r *ExchangeRateCacheRepository) SaveSnapshot(ctx context.Context, snapshot models.ExchangeRateSnapshot) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, LatestSnapshotKey, val, r.exp).Err()

	logger.Log.Infow("cache exchange rates",
		"key", LatestSnapshotKey,
		"currencies", len(snapshot.Rates),
		"result", "ok",
		"error", err,
	)

	return err
}
