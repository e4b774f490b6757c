package models

import "time"

// BaseCurrency is the currency every snapshot rate is quoted against.
const BaseCurrency = "USD"

// ExchangeRateSnapshot is the complete set of rates retrieved by one successful fetch.
type ExchangeRateSnapshot struct {
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// RateStatus is the state of the currency rate provider.
type RateStatus string

const (
	RateStatusIdle    RateStatus = "idle"
	RateStatusLoading RateStatus = "loading"
	RateStatusReady   RateStatus = "ready"
	RateStatusFailed  RateStatus = "failed"
)

// CurrencyResponse is one currency unit as exposed over the API.
// swagger:model CurrencyResponse
type CurrencyResponse struct {
	Code string  `json:"code" example:"EUR"`
	Name string  `json:"name" example:"Euro"`
	Rate float64 `json:"rate" example:"0.92"`
}

// ExchangeRatesResponse represents the current state of the rate provider
// swagger:model ExchangeRatesResponse
type ExchangeRatesResponse struct {
	Status            RateStatus         `json:"status" example:"ready"`
	Base              string             `json:"base" example:"USD"`
	Currencies        []CurrencyResponse `json:"currencies"`
	LastUpdated       *time.Time         `json:"last_updated,omitempty"`
	Error             string             `json:"error,omitempty"`
	CooldownRemaining int                `json:"cooldown_remaining" example:"42"`
}

// ExchangeRatesErrorResponse represents an error response when fetching exchange rates
// swagger:model ExchangeRatesErrorResponse
type ExchangeRatesErrorResponse struct {
	// Error message
	// example: Failed to retrieve exchange rates
	Error string `json:"error"`
}
