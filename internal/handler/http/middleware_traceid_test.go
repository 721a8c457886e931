package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSameTraceID: true},
		{name: "no trace ID in request, UUID generated", requestTraceID: ""},
		{name: "UUID string as incoming trace ID", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSameTraceID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}

			var ctxTraceID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxTraceID, _ = utils.GetTraceIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/orders/1", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			responseTraceID := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, responseTraceID)
			assert.Equal(t, responseTraceID, ctxTraceID, "context must carry the same trace id")

			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
			} else {
				_, err := uuid.Parse(responseTraceID)
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	seen := make(map[string]struct{})
	for range 50 {
		rr := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}

	assert.Len(t, seen, 50)
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside handler")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	assert.Contains(t, buf.String(), `"message":"inside handler"`)
}
