package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/equiv/internal/models"
	"github.com/sbilibin2017/equiv/internal/services"
)

func TestConvertPhraseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conv := NewMockPhraseConverter(ctrl)
	r := chi.NewRouter()
	RegisterConvertPhraseHandler(r, NewConvertPhraseHandler(conv))

	mismatch := fmt.Errorf("%w: cannot convert between Mass and Length, both units must be in the same category", services.ErrCategoryMismatch)

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name:      "success",
			inputBody: models.PhraseRequest{Value: 5, From: "miles", To: "km"},
			mockSetup: func() {
				conv.EXPECT().ConvertPhrase(5.0, "miles", "km").Return("5 mi = 8.04672 km", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &models.PhraseResponse{Text: "5 mi = 8.04672 km"},
		},
		{
			name:      "unresolved unit",
			inputBody: models.PhraseRequest{Value: 1, From: "furlongs", To: "km"},
			mockSetup: func() {
				conv.EXPECT().ConvertPhrase(1.0, "furlongs", "km").
					Return("", &services.UnresolvedUnitError{Text: "furlongs", Hint: services.SourceUnitHint})
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: &models.ErrorResponse{Error: "I couldn't recognize the unit 'furlongs'", Hint: services.SourceUnitHint},
		},
		{
			name:      "category mismatch",
			inputBody: models.PhraseRequest{Value: 1, From: "kg", To: "km"},
			mockSetup: func() {
				conv.EXPECT().ConvertPhrase(1.0, "kg", "km").Return("", mismatch)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: &models.ErrorResponse{Error: mismatch.Error()},
		},
		{
			name:      "no result",
			inputBody: models.PhraseRequest{Value: 0, From: "mpg", To: "L/100km"},
			mockSetup: func() {
				conv.EXPECT().ConvertPhrase(0.0, "mpg", "L/100km").Return("", services.ErrNoResult)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: &models.ErrorResponse{Error: services.ErrNoResult.Error()},
		},
		{
			name:      "unexpected error",
			inputBody: models.PhraseRequest{Value: 1, From: "m", To: "km"},
			mockSetup: func() {
				conv.EXPECT().ConvertPhrase(1.0, "m", "km").Return("", errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &models.ErrorResponse{Error: "internal server error"},
		},
		{
			name:         "invalid JSON",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: &models.ErrorResponse{Error: "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			rr := postJSON(t, r, "/convert/phrase", tt.inputBody)
			assert.Equal(t, tt.expectedCode, rr.Code)

			switch want := tt.expectedBody.(type) {
			case *models.PhraseResponse:
				var got models.PhraseResponse
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
