package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/order-service/internal/app"
)

// WriteJSON writes data as an application/json body with statusCode.
//
// The body is encoded before any header is sent. When encoding fails the
// client gets the plain 500 "Internal server error: <cause>" answer used for
// every unexpected failure, and the encoding error is returned.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		n, _ := WriteText(w, app.MsgInternalServerError+err.Error(), http.StatusInternalServerError)
		return n, fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}

// WriteText writes msg as a plain-text body. Error responses other than
// validation failures use it.
func WriteText(w http.ResponseWriter, msg string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write([]byte(msg))
}
