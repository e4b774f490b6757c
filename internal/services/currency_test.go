package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/equiv/internal/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)}
}

var testRates = map[string]float64{"USD": 1, "EUR": 0.9, "JPY": 150, "XYZ": 7}

func TestCurrencyService_HydrateFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	fetchedAt := time.Date(2026, 1, 30, 8, 0, 0, 0, time.UTC)

	reader := NewMockExchangeRatesReader(ctrl)
	cache := NewMockExchangeRatesCacheStore(ctrl)
	cache.EXPECT().
		GetLatestSnapshot(ctx).
		Return(&models.ExchangeRateSnapshot{Base: "USD", Rates: testRates, FetchedAt: fetchedAt}, nil).
		Times(1)

	svc := NewCurrencyService(reader, cache)
	svc.Hydrate(ctx)
	svc.Hydrate(ctx)

	currencies := svc.Currencies()
	require.Len(t, currencies, 3)
	assert.Equal(t, "USD", currencies[0].Symbol)
	assert.Equal(t, "Euro", currencies[1].Name)
	assert.Equal(t, models.Rate{Value: 150}, currencies[2].Rule)

	last, ok := svc.LastUpdated()
	assert.True(t, ok)
	assert.Equal(t, fetchedAt, last)
	assert.Equal(t, models.RateStatusIdle, svc.Status())
	assert.Equal(t, 0, svc.CooldownRemaining())
}

func TestCurrencyService_HydrateCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		snap *models.ExchangeRateSnapshot
		err  error
	}{
		{"empty cache", nil, nil},
		{"cache failure", nil, errors.New("redis down")},
		{"no supported codes", &models.ExchangeRateSnapshot{Rates: map[string]float64{"XYZ": 1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewMockExchangeRatesCacheStore(ctrl)
			cache.EXPECT().GetLatestSnapshot(gomock.Any()).Return(tt.snap, tt.err)

			svc := NewCurrencyService(NewMockExchangeRatesReader(ctrl), cache)
			svc.Hydrate(context.Background())

			assert.Empty(t, svc.Currencies())
			_, ok := svc.LastUpdated()
			assert.False(t, ok)
		})
	}
}

func TestCurrencyService_FetchRatesSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	clock := newFakeClock()

	reader := NewMockExchangeRatesReader(ctrl)
	cache := NewMockExchangeRatesCacheStore(ctrl)
	publisher := NewMockExchangeRatesPublisher(ctrl)

	want := models.ExchangeRateSnapshot{Base: "USD", Rates: testRates, FetchedAt: clock.Now()}

	gomock.InOrder(
		cache.EXPECT().GetLatestSnapshot(ctx).Return(nil, nil),
		reader.EXPECT().GetExchangeRates(ctx).Return(testRates, nil),
		cache.EXPECT().SaveSnapshot(ctx, want).Return(nil),
		publisher.EXPECT().PublishSnapshot(ctx, want).Return(nil),
	)

	svc := NewCurrencyService(reader, cache, WithClock(clock.Now), WithPublisher(publisher))
	svc.FetchRates(ctx)

	assert.Equal(t, models.RateStatusReady, svc.Status())
	assert.Len(t, svc.Currencies(), 3)
	assert.Empty(t, svc.Err())
	assert.False(t, svc.IsLoading())
	assert.Equal(t, 60, svc.CooldownRemaining())

	clock.Advance(15500 * time.Millisecond)
	assert.Equal(t, 45, svc.CooldownRemaining())

	resp := svc.GetExchangeRates()
	assert.Equal(t, models.RateStatusReady, resp.Status)
	assert.Equal(t, "USD", resp.Base)
	require.NotNil(t, resp.LastUpdated)
	assert.Equal(t, want.FetchedAt, *resp.LastUpdated)
	assert.Equal(t, []models.CurrencyResponse{
		{Code: "USD", Name: "US Dollar", Rate: 1},
		{Code: "EUR", Name: "Euro", Rate: 0.9},
		{Code: "JPY", Name: "Japanese Yen", Rate: 150},
	}, resp.Currencies)
}

func TestCurrencyService_Cooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	clock := newFakeClock()

	reader := NewMockExchangeRatesReader(ctrl)
	reader.EXPECT().GetExchangeRates(ctx).Return(testRates, nil).Times(2)

	svc := NewCurrencyService(reader, nil, WithClock(clock.Now))
	svc.FetchRates(ctx)

	clock.Advance(59 * time.Second)
	svc.FetchRates(ctx)
	assert.Equal(t, 1, svc.CooldownRemaining())

	clock.Advance(time.Second)
	svc.FetchRates(ctx)
	assert.Equal(t, 60, svc.CooldownRemaining())
}

func TestCurrencyService_CooldownRejectDoesNotReportLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	clock := newFakeClock()

	reader := NewMockExchangeRatesReader(ctrl)
	reader.EXPECT().GetExchangeRates(ctx).Return(testRates, nil).Times(1)

	var (
		svc       *CurrencyService
		recording bool
		seen      []bool
	)
	now := func() time.Time {
		if recording {
			seen = append(seen, svc.IsLoading())
		}
		return clock.Now()
	}

	svc = NewCurrencyService(reader, nil, WithClock(now))
	svc.FetchRates(ctx)

	clock.Advance(10 * time.Second)
	recording = true
	svc.FetchRates(ctx)
	recording = false

	require.NotEmpty(t, seen)
	for _, loading := range seen {
		assert.False(t, loading)
	}
	assert.False(t, svc.IsLoading())
	assert.Equal(t, models.RateStatusReady, svc.Status())
	assert.Equal(t, 50, svc.CooldownRemaining())
}

func TestCurrencyService_FailureKeepsLastGood(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	clock := newFakeClock()

	reader := NewMockExchangeRatesReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().GetExchangeRates(ctx).Return(testRates, nil),
		reader.EXPECT().GetExchangeRates(ctx).Return(nil, errors.New("network unreachable")),
	)

	svc := NewCurrencyService(reader, nil, WithClock(clock.Now))
	svc.FetchRates(ctx)
	good := svc.Currencies()
	updated, _ := svc.LastUpdated()

	clock.Advance(2 * time.Minute)
	svc.FetchRates(ctx)

	assert.Equal(t, models.RateStatusFailed, svc.Status())
	assert.Equal(t, "network unreachable", svc.Err())
	assert.Equal(t, good, svc.Currencies())
	assert.NotEmpty(t, svc.Currencies())

	last, _ := svc.LastUpdated()
	assert.Equal(t, updated, last)

	// the failed attempt starts a new cooldown
	assert.Equal(t, 60, svc.CooldownRemaining())
	svc.FetchRates(ctx)
}

func TestCurrencyService_FailureWithoutData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name  string
		rates map[string]float64
		err   error
		want  string
	}{
		{"network error", nil, errors.New("timeout"), "timeout"},
		{"unsupported payload", map[string]float64{"XYZ": 2}, nil, ErrNoSupportedCurrencies.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewMockExchangeRatesReader(ctrl)
			reader.EXPECT().GetExchangeRates(ctx).Return(tt.rates, tt.err)

			svc := NewCurrencyService(reader, nil)
			svc.FetchRates(ctx)

			assert.Equal(t, models.RateStatusFailed, svc.Status())
			assert.Equal(t, tt.want, svc.Err())
			assert.Empty(t, svc.Currencies())
			assert.Empty(t, svc.GetExchangeRates().Currencies)
			assert.Nil(t, svc.GetExchangeRates().LastUpdated)
		})
	}
}

func TestCurrencyService_SaveAndPublishErrorsKeepReady(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	reader := NewMockExchangeRatesReader(ctrl)
	cache := NewMockExchangeRatesCacheStore(ctrl)
	publisher := NewMockExchangeRatesPublisher(ctrl)

	cache.EXPECT().GetLatestSnapshot(ctx).Return(nil, nil)
	reader.EXPECT().GetExchangeRates(ctx).Return(testRates, nil)
	cache.EXPECT().SaveSnapshot(ctx, gomock.Any()).Return(errors.New("disk full"))
	publisher.EXPECT().PublishSnapshot(ctx, gomock.Any()).Return(errors.New("broker down"))

	svc := NewCurrencyService(reader, cache, WithPublisher(publisher))
	svc.FetchRates(ctx)

	assert.Equal(t, models.RateStatusReady, svc.Status())
	assert.Empty(t, svc.Err())
}

func TestCurrencyService_ConcurrentFetchIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})

	reader := NewMockExchangeRatesReader(ctrl)
	reader.EXPECT().
		GetExchangeRates(ctx).
		DoAndReturn(func(context.Context) (map[string]float64, error) {
			close(entered)
			<-release
			return testRates, nil
		}).
		Times(1)

	svc := NewCurrencyService(reader, nil, WithCooldown(0))

	done := make(chan struct{})
	go func() {
		svc.FetchRates(ctx)
		close(done)
	}()
	<-entered

	assert.True(t, svc.IsLoading())
	assert.Equal(t, models.RateStatusLoading, svc.Status())

	// swallowed while loading, and readers see the previous state
	svc.FetchRates(ctx)
	assert.Empty(t, svc.Currencies())

	conv := NewConverterService(svc)
	_, ok := conv.Convert(models.Currency, 0, 1, 1)
	assert.False(t, ok)

	close(release)
	<-done

	assert.False(t, svc.IsLoading())
	got, ok := conv.Convert(models.Currency, 0, 1, 100)
	require.True(t, ok)
	assert.InDelta(t, 90, got, 1e-9)
}

func TestCurrencyService_RunRefreshLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	fetched := make(chan struct{}, 1)

	reader := NewMockExchangeRatesReader(ctrl)
	reader.EXPECT().
		GetExchangeRates(gomock.Any()).
		DoAndReturn(func(context.Context) (map[string]float64, error) {
			select {
			case fetched <- struct{}{}:
			default:
			}
			return testRates, nil
		}).
		MinTimes(1)

	svc := NewCurrencyService(reader, nil)

	done := make(chan struct{})
	go func() {
		svc.RunRefreshLoop(ctx, time.Hour)
		close(done)
	}()

	<-fetched
	cancel()
	<-done
	assert.Len(t, svc.Currencies(), 3)
}

func TestCurrencyUnits_Order(t *testing.T) {
	rates := make(map[string]float64, len(SupportedCurrencies))
	for i, code := range SupportedCurrencies {
		rates[code] = float64(i + 1)
	}
	units := currencyUnits(rates)
	require.Len(t, units, 30)
	for i, u := range units {
		assert.Equal(t, SupportedCurrencies[i], u.Symbol)
		assert.NotEqual(t, u.Symbol, u.Name)
	}
}
