package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/equiv/internal/models"
	"github.com/sbilibin2017/equiv/internal/services"
)

// NewResolveHandler maps free text like "miles" or "°F" to a catalog unit.
// @Summary Resolve a unit name
// @Description Looks the text up in the alias table, ignoring case and surrounding whitespace
// @Tags convert
// @Produce json
// @Param q query string true "Unit text" example(miles)
// @Success 200 {object} models.ResolvedUnitReference
// @Failure 400 {object} models.ErrorResponse "Missing query"
// @Failure 404 {object} models.ErrorResponse "Unrecognized unit"
// @Router /resolve [get]
func NewResolveHandler(resolve func(text string) (models.ResolvedUnitReference, bool)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if strings.TrimSpace(q) == "" {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "query parameter q is required"})
			return
		}

		ref, ok := resolve(q)
		if !ok {
			unresolved := &services.UnresolvedUnitError{Text: q, Hint: services.SourceUnitHint}
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: unresolved.Error(), Hint: unresolved.Hint})
			return
		}
		writeJSON(w, http.StatusOK, ref)
	}
}

// RegisterResolveHandler registers the alias lookup route
func RegisterResolveHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/resolve", h)
}
