package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/equiv/internal/logger"
	"github.com/sbilibin2017/equiv/internal/models"
	"github.com/sbilibin2017/equiv/internal/services"
)

//go:generate mockgen -source=phrase.go -destination=phrase_mock.go -package=handlers

// PhraseConverter converts between two free-text unit names.
type PhraseConverter interface {
	ConvertPhrase(value float64, from, to string) (string, error)
}

// NewConvertPhraseHandler converts a value between two unit names, e.g. 5 miles to km.
// @Summary Convert between unit names
// @Description Resolves both unit names and renders the conversion as a sentence like "5 mi = 8.04672 km"
// @Tags convert
// @Accept json
// @Produce json
// @Param request body models.PhraseRequest true "Phrase request"
// @Success 200 {object} models.PhraseResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 422 {object} models.ErrorResponse "Unrecognized units, category mismatch or no result"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /convert/phrase [post]
func NewConvertPhraseHandler(conv PhraseConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PhraseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}

		text, err := conv.ConvertPhrase(req.Value, req.From, req.To)
		if err != nil {
			var unresolved *services.UnresolvedUnitError
			switch {
			case errors.As(err, &unresolved):
				writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: unresolved.Error(), Hint: unresolved.Hint})
			case errors.Is(err, services.ErrCategoryMismatch), errors.Is(err, services.ErrNoResult):
				writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("phrase conversion failed", "from", req.From, "to", req.To, "error", err)
				writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, models.PhraseResponse{Text: text})
	}
}

// RegisterConvertPhraseHandler registers the phrase conversion route
func RegisterConvertPhraseHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/convert/phrase", h)
}
