package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/order-service/internal/adapter"
	"github.com/MKhiriev/order-service/internal/app"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/service"
	"github.com/MKhiriev/order-service/internal/store"
	"github.com/MKhiriev/order-service/internal/utils"
	"github.com/MKhiriev/order-service/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrValidation:   http.StatusBadRequest,
	service.ErrInvalidArgument: http.StatusBadRequest,

	service.ErrOrderNotFound: http.StatusNotFound,
	service.ErrItemNotFound:  http.StatusNotFound,
	store.ErrOrderNotFound:   http.StatusNotFound,
	store.ErrItemNotFound:    http.StatusNotFound,
	adapter.ErrUserNotFound:  http.StatusNotFound,

	store.ErrIntegrityViolation: http.StatusConflict,

	adapter.ErrServiceUnavailable: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the body written for err. Domain errors carry
// their own message; other failures get a fixed text per status.
func messageFromError(err error, status int) string {
	var domainErr *service.DomainError
	hasMessage := errors.As(err, &domainErr)

	switch status {
	case http.StatusNotFound:
		if hasMessage {
			return domainErr.Message
		}
		return app.MsgResourceNotFound
	case http.StatusBadRequest:
		if hasMessage {
			return domainErr.Message
		}
		return err.Error()
	case http.StatusConflict:
		return app.MsgIntegrityViolation
	case http.StatusServiceUnavailable:
		return app.MsgServiceUnavailable
	default:
		return app.MsgInternalServerError + err.Error()
	}
}

// writeError maps err to a response. Validation failures are written as a
// JSON object of field to message, everything else as plain text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fn string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Warn().Err(err).Str("func", fn).Msg("validation failed")
		utils.WriteJSON(w, validationErr.Fields, http.StatusBadRequest)
		return
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	utils.WriteText(w, messageFromError(err, status), status)
}
