package services

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sbilibin2017/equiv/internal/logger"
	"github.com/sbilibin2017/equiv/internal/models"
)

//go:generate mockgen -source=currency.go -destination=currency_mock.go -package=services

// ExchangeRatesReader fetches the latest rates quoted against USD from an external service
type ExchangeRatesReader interface {
	GetExchangeRates(ctx context.Context) (map[string]float64, error)
}

// ExchangeRatesCacheStore persists the most recent rate snapshot
type ExchangeRatesCacheStore interface {
	GetLatestSnapshot(ctx context.Context) (*models.ExchangeRateSnapshot, error)
	SaveSnapshot(ctx context.Context, snapshot models.ExchangeRateSnapshot) error
}

// ExchangeRatesPublisher announces a new snapshot to other systems
type ExchangeRatesPublisher interface {
	PublishSnapshot(ctx context.Context, snapshot models.ExchangeRateSnapshot) error
}

// DefaultCooldown is the minimum time between two fetch attempts.
const DefaultCooldown = 60 * time.Second

var ErrNoSupportedCurrencies = errors.New("no supported currencies in exchange rate payload")

// SupportedCurrencies lists the currency codes exposed as units, in unit order.
var SupportedCurrencies = []string{
	"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "INR", "MXN",
	"BRL", "KRW", "SEK", "NOK", "DKK", "NZD", "SGD", "HKD", "TRY", "ZAR",
	"RUB", "PLN", "THB", "TWD", "MYR", "PHP", "IDR", "CZK", "ILS", "AED",
}

var currencyNames = map[string]string{
	"USD": "US Dollar", "EUR": "Euro", "GBP": "British Pound",
	"JPY": "Japanese Yen", "AUD": "Australian Dollar", "CAD": "Canadian Dollar",
	"CHF": "Swiss Franc", "CNY": "Chinese Yuan", "INR": "Indian Rupee",
	"MXN": "Mexican Peso", "BRL": "Brazilian Real", "KRW": "South Korean Won",
	"SEK": "Swedish Krona", "NOK": "Norwegian Krone", "DKK": "Danish Krone",
	"NZD": "New Zealand Dollar", "SGD": "Singapore Dollar", "HKD": "Hong Kong Dollar",
	"TRY": "Turkish Lira", "ZAR": "South African Rand", "RUB": "Russian Ruble",
	"PLN": "Polish Zloty", "THB": "Thai Baht", "TWD": "Taiwan Dollar",
	"MYR": "Malaysian Ringgit", "PHP": "Philippine Peso", "IDR": "Indonesian Rupiah",
	"CZK": "Czech Koruna", "ILS": "Israeli Shekel", "AED": "UAE Dirham",
}

// currencyState is never mutated after it is published.
type currencyState struct {
	status      models.RateStatus
	currencies  []models.Unit
	lastUpdated time.Time
	lastAttempt time.Time
	err         string
}

// CurrencyService owns the live exchange rate snapshot.
// Readers never block: every fetch publishes a fresh immutable state.
type CurrencyService struct {
	reader    ExchangeRatesReader
	cache     ExchangeRatesCacheStore
	publisher ExchangeRatesPublisher
	cooldown  time.Duration
	now       func() time.Time

	state   atomic.Pointer[currencyState]
	loading atomic.Bool
	hydrate sync.Once
}

// CurrencyOption configures a CurrencyService.
type CurrencyOption func(*CurrencyService)

// WithCooldown overrides DefaultCooldown.
func WithCooldown(d time.Duration) CurrencyOption {
	return func(svc *CurrencyService) { svc.cooldown = d }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) CurrencyOption {
	return func(svc *CurrencyService) { svc.now = now }
}

// WithPublisher announces every successful fetch through p.
func WithPublisher(p ExchangeRatesPublisher) CurrencyOption {
	return func(svc *CurrencyService) { svc.publisher = p }
}

// NewCurrencyService creates a new service instance. cache may be nil.
func NewCurrencyService(reader ExchangeRatesReader, cache ExchangeRatesCacheStore, opts ...CurrencyOption) *CurrencyService {
	svc := &CurrencyService{
		reader:   reader,
		cache:    cache,
		cooldown: DefaultCooldown,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	svc.state.Store(&currencyState{status: models.RateStatusIdle})
	return svc
}

// Hydrate loads the cached snapshot, if any. It runs at most once and
// always before the first fetch.
func (svc *CurrencyService) Hydrate(ctx context.Context) {
	svc.hydrate.Do(func() {
		if svc.cache == nil {
			return
		}
		snap, err := svc.cache.GetLatestSnapshot(ctx)
		if err != nil {
			logger.Log.Errorw("failed to load cached exchange rates", "error", err)
			return
		}
		if snap == nil {
			return
		}
		units := currencyUnits(snap.Rates)
		if len(units) == 0 {
			return
		}
		svc.state.Store(&currencyState{
			status:      models.RateStatusIdle,
			currencies:  units,
			lastUpdated: snap.FetchedAt,
		})
		logger.Log.Infow("loaded cached exchange rates", "fetched_at", snap.FetchedAt, "currencies", len(units))
	})
}

// FetchRates refreshes the snapshot from the external reader. Calls made
// while a fetch is in flight, or within the cooldown of the previous
// attempt, return immediately. Failures keep the last good currencies.
func (svc *CurrencyService) FetchRates(ctx context.Context) {
	svc.Hydrate(ctx)

	// rejected calls must not flip the loading flag
	if svc.coolingDown(svc.state.Load(), svc.now()) {
		return
	}
	if !svc.loading.CompareAndSwap(false, true) {
		return
	}
	defer svc.loading.Store(false)

	// another fetch may have finished between the check and the swap
	prev := svc.state.Load()
	started := svc.now()
	if svc.coolingDown(prev, started) {
		return
	}

	attempt := *prev
	attempt.lastAttempt = started
	attempt.err = ""
	svc.state.Store(&attempt)

	rates, err := svc.reader.GetExchangeRates(ctx)
	var units []models.Unit
	if err == nil {
		if units = currencyUnits(rates); len(units) == 0 {
			err = ErrNoSupportedCurrencies
		}
	}
	if err != nil {
		failed := attempt
		failed.status = models.RateStatusFailed
		failed.err = err.Error()
		svc.state.Store(&failed)
		logger.Log.Errorw("failed to fetch exchange rates", "error", err)
		return
	}

	fetchedAt := svc.now()
	svc.state.Store(&currencyState{
		status:      models.RateStatusReady,
		currencies:  units,
		lastUpdated: fetchedAt,
		lastAttempt: started,
	})
	logger.Log.Infow("exchange rates updated", "currencies", len(units))

	snap := models.ExchangeRateSnapshot{Base: models.BaseCurrency, Rates: rates, FetchedAt: fetchedAt}
	if svc.cache != nil {
		if err := svc.cache.SaveSnapshot(ctx, snap); err != nil {
			logger.Log.Errorw("failed to cache exchange rates", "error", err)
		}
	}
	if svc.publisher != nil {
		if err := svc.publisher.PublishSnapshot(ctx, snap); err != nil {
			logger.Log.Errorw("failed to publish exchange rates", "error", err)
		}
	}
}

func (svc *CurrencyService) coolingDown(st *currencyState, now time.Time) bool {
	return !st.lastAttempt.IsZero() && now.Sub(st.lastAttempt) < svc.cooldown
}

// RunRefreshLoop fetches immediately and then on every interval until ctx is done.
func (svc *CurrencyService) RunRefreshLoop(ctx context.Context, interval time.Duration) {
	svc.FetchRates(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			svc.FetchRates(ctx)
		}
	}
}

// Currencies returns the currency units of the active snapshot.
func (svc *CurrencyService) Currencies() []models.Unit {
	return svc.state.Load().currencies
}

// LastUpdated returns when the active snapshot was fetched.
func (svc *CurrencyService) LastUpdated() (time.Time, bool) {
	st := svc.state.Load()
	return st.lastUpdated, !st.lastUpdated.IsZero()
}

// IsLoading reports whether a fetch is in flight.
func (svc *CurrencyService) IsLoading() bool {
	return svc.loading.Load()
}

// Err returns the description of the last failed fetch, or "".
func (svc *CurrencyService) Err() string {
	return svc.state.Load().err
}

// Status returns the provider state.
func (svc *CurrencyService) Status() models.RateStatus {
	if svc.loading.Load() {
		return models.RateStatusLoading
	}
	return svc.state.Load().status
}

// CooldownRemaining returns whole seconds left before another fetch may start.
func (svc *CurrencyService) CooldownRemaining() int {
	return svc.cooldownRemaining(svc.state.Load())
}

func (svc *CurrencyService) cooldownRemaining(st *currencyState) int {
	if st.lastAttempt.IsZero() {
		return 0
	}
	left := svc.cooldown - svc.now().Sub(st.lastAttempt)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// GetExchangeRates returns a consistent view of the provider state.
func (svc *CurrencyService) GetExchangeRates() models.ExchangeRatesResponse {
	st := svc.state.Load()
	resp := models.ExchangeRatesResponse{
		Status:            svc.Status(),
		Base:              models.BaseCurrency,
		Currencies:        make([]models.CurrencyResponse, 0, len(st.currencies)),
		Error:             st.err,
		CooldownRemaining: svc.cooldownRemaining(st),
	}
	for _, u := range st.currencies {
		rate, _ := u.Rule.(models.Rate)
		resp.Currencies = append(resp.Currencies, models.CurrencyResponse{Code: u.Symbol, Name: u.Name, Rate: rate.Value})
	}
	if !st.lastUpdated.IsZero() {
		t := st.lastUpdated
		resp.LastUpdated = &t
	}
	return resp
}

// currencyUnits builds units for the supported codes present in rates.
func currencyUnits(rates map[string]float64) []models.Unit {
	units := make([]models.Unit, 0, len(SupportedCurrencies))
	for _, code := range SupportedCurrencies {
		rate, ok := rates[code]
		if !ok {
			continue
		}
		name, ok := currencyNames[code]
		if !ok {
			name = code
		}
		units = append(units, models.Unit{Name: name, Symbol: code, Rule: models.Rate{Value: rate}})
	}
	return units
}
