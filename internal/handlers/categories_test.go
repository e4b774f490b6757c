package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/equiv/internal/catalog"
	"github.com/sbilibin2017/equiv/internal/models"
)

var testCurrencies = []models.Unit{
	{Name: "US Dollar", Symbol: "USD", Rule: models.Rate{Value: 1}},
	{Name: "Euro", Symbol: "EUR", Rule: models.Rate{Value: 0.9}},
}

func newCategoryRouter(reader UnitsReader) chi.Router {
	r := chi.NewRouter()
	RegisterCategoryHandlers(r, NewListCategoriesHandler(reader), NewListUnitsHandler(reader))
	return r
}

func catalogUnits(category models.Category) []models.Unit {
	if category == models.Currency {
		return testCurrencies
	}
	return catalog.UnitsFor(category)
}

func TestListCategoriesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUnitsReader(ctrl)
	reader.EXPECT().Units(gomock.Any()).DoAndReturn(catalogUnits).Times(len(catalog.Categories()))

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rr := httptest.NewRecorder()
	newCategoryRouter(reader).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var got []models.CategoryResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got, len(catalog.Categories()))

	assert.Equal(t, models.Length, got[0].ID)
	assert.Equal(t, "Length", got[0].DisplayName)
	assert.Equal(t, 10, got[0].UnitCount)

	last := got[len(got)-1]
	assert.Equal(t, models.Currency, last.ID)
	assert.Equal(t, models.KindCurrency, last.Kind)
	assert.Equal(t, 2, last.UnitCount)
}

func TestListUnitsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUnitsReader(ctrl)

	tests := []struct {
		name         string
		path         string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "temperature",
			path: "/categories/temperature/units",
			mockSetup: func() {
				reader.EXPECT().Units(models.Temperature).Return(catalog.UnitsFor(models.Temperature))
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.UnitsResponse{
				Category: models.Temperature,
				Units: []models.UnitResponse{
					{Index: 0, Name: "Celsius", Symbol: "°C"},
					{Index: 1, Name: "Fahrenheit", Symbol: "°F"},
					{Index: 2, Name: "Kelvin", Symbol: "K"},
				},
			},
		},
		{
			name: "currency without rates",
			path: "/categories/currency/units",
			mockSetup: func() {
				reader.EXPECT().Units(models.Currency).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.UnitsResponse{Category: models.Currency, Units: []models.UnitResponse{}},
		},
		{
			name:         "unknown category",
			path:         "/categories/luminosity/units",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: &models.ErrorResponse{Error: "unknown category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			newCategoryRouter(reader).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			switch want := tt.expectedBody.(type) {
			case *models.UnitsResponse:
				var got models.UnitsResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, want, &got)
			case *models.ErrorResponse:
				var got models.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, want, &got)
			}
		})
	}
}
