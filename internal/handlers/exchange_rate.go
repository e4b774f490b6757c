package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/equiv/internal/models"
)

//go:generate mockgen -source=exchange_rate.go -destination=exchange_rate_mock.go -package=handlers

// ExchangeRatesReader exposes the state of the currency rate provider.
type ExchangeRatesReader interface {
	GetExchangeRates() models.ExchangeRatesResponse
}

// ExchangeRatesRefresher triggers a rate fetch.
type ExchangeRatesRefresher interface {
	FetchRates(ctx context.Context)
}

// NewGetExchangeRatesHandler returns the current rate provider state.
// @Summary Get exchange rates
// @Description Returns the currency units of the active snapshot together with the provider status
// @Tags exchange
// @Produce json
// @Success 200 {object} models.ExchangeRatesResponse "Exchange rates"
// @Router /exchange/rates [get]
func NewGetExchangeRatesHandler(reader ExchangeRatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, reader.GetExchangeRates())
	}
}

// NewRefreshExchangeRatesHandler fetches fresh rates and returns the resulting state.
// Requests inside the cooldown window or during a running fetch leave the state untouched.
// @Summary Refresh exchange rates
// @Description Fetches the latest rates unless a fetch is running or the cooldown has not elapsed
// @Tags exchange
// @Produce json
// @Success 200 {object} models.ExchangeRatesResponse "Exchange rates"
// @Router /exchange/rates/refresh [post]
func NewRefreshExchangeRatesHandler(refresher ExchangeRatesRefresher, reader ExchangeRatesReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refresher.FetchRates(r.Context())
		writeJSON(w, http.StatusOK, reader.GetExchangeRates())
	}
}

// RegisterExchangeRatesHandlers registers the exchange rate routes
func RegisterExchangeRatesHandlers(r chi.Router, get, refresh http.HandlerFunc) {
	r.Get("/exchange/rates", get)
	r.Post("/exchange/rates/refresh", refresh)
}
