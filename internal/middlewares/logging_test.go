package middlewares

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		handlerStatus  int
		handlerBody    string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "OK response",
			handlerStatus:  http.StatusOK,
			handlerBody:    "hello",
			expectedStatus: http.StatusOK,
			expectedBody:   "hello",
		},
		{
			name:           "Internal server error",
			handlerStatus:  http.StatusInternalServerError,
			handlerBody:    "error",
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)

			var ctxID string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID, _ = RequestIDFromContext(r.Context())
				w.WriteHeader(tt.handlerStatus)
				_, _ = w.Write([]byte(tt.handlerBody))
			})

			handler := LoggingMiddleware(zap.New(core).Sugar())(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			bodyBytes, _ := io.ReadAll(rr.Body)
			assert.Equal(t, tt.expectedBody, string(bodyBytes))

			reqID := rr.Header().Get(RequestIDHeader)
			_, err := uuid.Parse(reqID)
			assert.NoError(t, err)
			assert.Equal(t, reqID, ctxID)

			entries := logs.All()
			require.Len(t, entries, 2)
			assert.Equal(t, "request", entries[0].Message)
			assert.Equal(t, "response", entries[1].Message)
			assert.Equal(t, int64(tt.expectedStatus), entries[1].ContextMap()["status"])
			assert.Equal(t, reqID, entries[1].ContextMap()["request_id"])
		})
	}
}

func TestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	incoming := uuid.New().String()

	handler := LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := RequestIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, incoming, id)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, incoming, rr.Header().Get(RequestIDHeader))
}

func TestLoggingMiddleware_ReplacesMalformedRequestID(t *testing.T) {
	handler := LoggingMiddleware(zap.NewNop().Sugar())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	got := rr.Header().Get(RequestIDHeader)
	assert.NotEqual(t, "not-a-uuid", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	_, ok := RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
