package repositories

import (
	"context"
	"maps"
	"sync"

	"github.com/sbilibin2017/equiv/internal/models"
)

// ExchangeRateMemoryRepository keeps the latest snapshot for the lifetime of the process.
type ExchangeRateMemoryRepository struct {
	mu       sync.RWMutex
	snapshot *models.ExchangeRateSnapshot
}

func NewExchangeRateMemoryRepository() *ExchangeRateMemoryRepository {
	return &ExchangeRateMemoryRepository{}
}

func (r *ExchangeRateMemoryRepository) GetLatestSnapshot(ctx context.Context) (*models.ExchangeRateSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.snapshot == nil {
		return nil, nil
	}
	snap := *r.snapshot
	snap.Rates = maps.Clone(r.snapshot.Rates)
	return &snap, nil
}

func (r *ExchangeRateMemoryRepository) SaveSnapshot(ctx context.Context, snapshot models.ExchangeRateSnapshot) error {
	snapshot.Rates = maps.Clone(snapshot.Rates)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = &snapshot
	return nil
}
