package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader_OnlyFirstCallCounts(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name       string
		writes     []string
		wantSize   int
		wantStatus int
	}{
		{name: "implicit 200", writes: []string{"hello"}, wantSize: 5, wantStatus: http.StatusOK},
		{name: "accumulates size", writes: []string{"ab", "cde", "f"}, wantSize: 6, wantStatus: http.StatusOK},
		{name: "empty body", writes: []string{""}, wantSize: 0, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			rw := &responseWriter{ResponseWriter: rr}

			for _, s := range tt.writes {
				rw.Write([]byte(s))
			}

			assert.Equal(t, tt.wantSize, rw.size)
			assert.Equal(t, tt.wantStatus, rw.status)
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, rw.Unwrap())
}
