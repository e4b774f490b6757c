package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/equiv/internal/catalog"
	"github.com/sbilibin2017/equiv/internal/models"
)

//go:generate mockgen -source=convert.go -destination=convert_mock.go -package=handlers

// Converter renders conversions of textual input.
type Converter interface {
	ConvertText(req models.ConversionRequest) models.ConversionResult
	ConvertAllText(req models.ConvertAllRequest) []models.ConvertAllEntry
}

// NewConvertHandler converts a value between two units of a category.
// @Summary Convert a value
// @Description Converts the textual value from the source unit into the destination unit. An empty result means the conversion has no result.
// @Tags convert
// @Accept json
// @Produce json
// @Param request body models.ConversionRequest true "Conversion request"
// @Success 200 {object} models.ConversionResult
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Unknown category"
// @Router /convert [post]
func NewConvertHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConversionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}
		if _, ok := catalog.Lookup(req.Category); !ok {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "unknown category"})
			return
		}

		writeJSON(w, http.StatusOK, conv.ConvertText(req))
	}
}

// NewConvertAllHandler converts a value into every other unit of a category.
// @Summary Convert a value into all units
// @Description Converts the textual value from the source unit into every other unit of the category, in index order
// @Tags convert
// @Accept json
// @Produce json
// @Param request body models.ConvertAllRequest true "Conversion request"
// @Success 200 {object} models.ConvertAllResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 404 {object} models.ErrorResponse "Unknown category"
// @Router /convert/all [post]
func NewConvertAllHandler(conv Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.ConvertAllRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}
		if _, ok := catalog.Lookup(req.Category); !ok {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "unknown category"})
			return
		}

		results := conv.ConvertAllText(req)
		if results == nil {
			results = []models.ConvertAllEntry{}
		}
		writeJSON(w, http.StatusOK, models.ConvertAllResponse{Results: results})
	}
}

// RegisterConvertHandlers registers the conversion routes
func RegisterConvertHandlers(r chi.Router, convert, convertAll http.HandlerFunc) {
	r.Post("/convert", convert)
	r.Post("/convert/all", convertAll)
}
