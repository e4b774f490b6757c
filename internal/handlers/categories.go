package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/equiv/internal/catalog"
	"github.com/sbilibin2017/equiv/internal/models"
)

//go:generate mockgen -source=categories.go -destination=categories_mock.go -package=handlers

// UnitsReader returns the current ordered units of a category.
type UnitsReader interface {
	Units(category models.Category) []models.Unit
}

// NewListCategoriesHandler lists every category with its current unit count.
// @Summary List categories
// @Description Returns all categories in display order with the number of units each one offers
// @Tags categories
// @Produce json
// @Success 200 {array} models.CategoryResponse
// @Router /categories [get]
func NewListCategoriesHandler(reader UnitsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := catalog.Categories()
		resp := make([]models.CategoryResponse, 0, len(categories))
		for _, c := range categories {
			resp = append(resp, models.CategoryResponse{
				CategoryInfo: c,
				UnitCount:    len(reader.Units(c.ID)),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewListUnitsHandler lists the units of one category in index order.
// @Summary List units
// @Description Returns the ordered units of a category. Indices are the ones used by the conversion endpoints.
// @Tags categories
// @Produce json
// @Param category path string true "Category identifier" example(length)
// @Success 200 {object} models.UnitsResponse
// @Failure 404 {object} models.ErrorResponse "Unknown category"
// @Router /categories/{category}/units [get]
func NewListUnitsHandler(reader UnitsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := models.Category(chi.URLParam(r, "category"))
		if _, ok := catalog.Lookup(category); !ok {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "unknown category"})
			return
		}

		units := reader.Units(category)
		resp := models.UnitsResponse{
			Category: category,
			Units:    make([]models.UnitResponse, 0, len(units)),
		}
		for i, u := range units {
			resp.Units = append(resp.Units, models.UnitResponse{Index: i, Name: u.Name, Symbol: u.Symbol})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// RegisterCategoryHandlers registers the category routes
func RegisterCategoryHandlers(r chi.Router, list, units http.HandlerFunc) {
	r.Get("/categories", list)
	r.Get("/categories/{category}/units", units)
}
