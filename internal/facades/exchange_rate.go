package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/equiv/internal/logger"
)

// DefaultExchangeRatesURL returns rates quoted against USD.
const DefaultExchangeRatesURL = "https://open.er-api.com/v6/latest/USD"

const successResult = "success"

var (
	ErrUnexpectedStatus = errors.New("unexpected HTTP status from exchange rate service")
	ErrUnexpectedResult = errors.New("exchange rate service reported failure")
)

type exchangeRatesPayload struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// ExchangeRatesHTTPFacade reads exchange rates from an open.er-api.com compatible endpoint.
type ExchangeRatesHTTPFacade struct {
	client *http.Client
	url    string
}

// NewExchangeRatesHTTPFacade creates a new facade. A nil client means http.DefaultClient.
func NewExchangeRatesHTTPFacade(client *http.Client, url string) *ExchangeRatesHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	if url == "" {
		url = DefaultExchangeRatesURL
	}
	return &ExchangeRatesHTTPFacade{client: client, url: url}
}

// GetExchangeRates fetches all exchange rates and returns them as map[code]rate
func (f *ExchangeRatesHTTPFacade) GetExchangeRates(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via HTTP", "url", f.url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("exchange rate service returned bad status", "url", f.url, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var payload exchangeRatesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Errorw("failed to decode exchange rates", "url", f.url, "error", err)
		return nil, fmt.Errorf("decode exchange rates: %w", err)
	}
	if payload.Result != successResult || payload.Rates == nil {
		logger.Log.Errorw("exchange rate service reported failure", "url", f.url, "result", payload.Result)
		return nil, fmt.Errorf("%w: result %q", ErrUnexpectedResult, payload.Result)
	}

	logger.Log.Infow("fetched exchange rates", "url", f.url, "currencies", len(payload.Rates))
	return payload.Rates, nil
}
