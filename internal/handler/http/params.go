package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/order-service/internal/app"
	"github.com/MKhiriev/order-service/internal/service"
	"github.com/go-chi/chi/v5"
)

const orderIDsParam = "orderIds"

func invalidArgument(format string, args ...any) error {
	return &service.DomainError{
		Kind:    service.ErrInvalidArgument,
		Message: fmt.Sprintf(format, args...),
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", invalidArgument(app.MsgInvalidJSON), err)
	}
	return nil
}

// pathID reads a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalidArgument(app.MsgInvalidPathID, name, raw)
	}
	return id, nil
}

// orderIDs accepts both repeated parameters (?orderIds=1&orderIds=2) and
// comma-separated lists (?orderIds=1,2). Emptiness is left to validation.
func orderIDs(r *http.Request) ([]int64, error) {
	ids := make([]int64, 0)
	for _, value := range r.URL.Query()[orderIDsParam] {
		for _, raw := range strings.Split(value, ",") {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}

			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, invalidArgument(app.MsgInvalidOrderIDs, raw)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}
