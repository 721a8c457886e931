package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request. 4xx responses are
// logged at warn level, 5xx at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		log := logger.FromRequest(r)
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("route", routePattern(r)).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// routePattern returns the matched chi pattern (e.g. "/orders/{id}") or an
// empty string outside of a chi router.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
