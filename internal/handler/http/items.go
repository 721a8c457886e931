package http

import (
	"net/http"

	"github.com/MKhiriev/order-service/internal/utils"
)

func (h *Handler) getItemByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.getItemByID")
		return
	}

	item, err := h.services.ItemService.GetItemByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getItemByID")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
