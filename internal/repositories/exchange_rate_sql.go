package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/equiv/internal/logger"
	"github.com/sbilibin2017/equiv/internal/models"
)

// ExchangeRateSnapshotsSchema is valid for both PostgreSQL and SQLite.
const ExchangeRateSnapshotsSchema = `
	CREATE TABLE IF NOT EXISTS exchange_rate_snapshots (
		id         INTEGER PRIMARY KEY,
		base       VARCHAR(3) NOT NULL,
		rates_json TEXT NOT NULL,
		fetched_at BIGINT NOT NULL
	)
`

// the table only ever holds the latest snapshot
const latestSnapshotID = 1

type snapshotRow struct {
	Base      string `db:"base"`
	RatesJSON string `db:"rates_json"`
	FetchedAt int64  `db:"fetched_at"`
}

// Migrate creates the snapshot table if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, ExchangeRateSnapshotsSchema)

	logger.Log.Infow("migrate exchange rate snapshots",
		"driver", db.DriverName(),
		"error", err,
	)

	return err
}

// ExchangeRateSQLRepository keeps the last good exchange rate snapshot in a SQL database
type ExchangeRateSQLRepository struct {
	db *sqlx.DB
}

func NewExchangeRateSQLRepository(db *sqlx.DB) *ExchangeRateSQLRepository {
	return &ExchangeRateSQLRepository{db: db}
}

// GetLatestSnapshot returns the stored snapshot, or nil when the table is empty
func (r *ExchangeRateSQLRepository) GetLatestSnapshot(ctx context.Context) (*models.ExchangeRateSnapshot, error) {
	query := r.db.Rebind(`
		SELECT base, rates_json, fetched_at
		FROM exchange_rate_snapshots
		WHERE id = ?
	`)

	var row snapshotRow
	err := r.db.GetContext(ctx, &row, query, latestSnapshotID)

	logger.Log.Infow("read stored exchange rates",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{latestSnapshotID},
		"result", row.Base,
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	var rates map[string]float64
	if err := json.Unmarshal([]byte(row.RatesJSON), &rates); err != nil {
		return nil, err
	}

	return &models.ExchangeRateSnapshot{
		Base:      row.Base,
		Rates:     rates,
		FetchedAt: time.Unix(0, row.FetchedAt).UTC(),
	}, nil
}

// SaveSnapshot replaces the stored snapshot
func (r *ExchangeRateSQLRepository) SaveSnapshot(ctx context.Context, snapshot models.ExchangeRateSnapshot) error {
	rates, err := json.Marshal(snapshot.Rates)
	if err != nil {
		return err
	}

	query := r.db.Rebind(`
		INSERT INTO exchange_rate_snapshots (id, base, rates_json, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id)
		DO UPDATE SET base = EXCLUDED.base, rates_json = EXCLUDED.rates_json, fetched_at = EXCLUDED.fetched_at
	`)

	_, err = r.db.ExecContext(ctx, query, latestSnapshotID, snapshot.Base, string(rates), snapshot.FetchedAt.UnixNano())

	logger.Log.Infow("store exchange rates",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{latestSnapshotID, snapshot.Base, len(snapshot.Rates), snapshot.FetchedAt},
		"result", "ok",
		"error", err,
	)

	return err
}
