package http

import (
	"net/http"

	"github.com/MKhiriev/order-service/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
