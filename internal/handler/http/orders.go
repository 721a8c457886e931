package http

import (
	"net/http"

	"github.com/MKhiriev/order-service/internal/app"
	"github.com/MKhiriev/order-service/internal/utils"
	"github.com/MKhiriev/order-service/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var request models.OrderRequest
	if err := decodeJSON(r, &request); err != nil {
		h.writeError(w, r, err, "*Handler.createOrder")
		return
	}

	response, err := h.services.OrderService.CreateOrder(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createOrder")
		return
	}

	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) getOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.getOrderByID")
		return
	}

	response, err := h.services.OrderService.GetOrderByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getOrderByID")
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) getOrdersByIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := orderIDs(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getOrdersByIDs")
		return
	}

	responses, err := h.services.OrderService.GetOrdersByIDs(r.Context(), ids)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getOrdersByIDs")
		return
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

func (h *Handler) getOrdersByStatus(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "status")
	status, ok := models.ParseStatus(raw)
	if !ok {
		h.writeError(w, r, invalidArgument(app.MsgUnknownStatus, raw), "*Handler.getOrdersByStatus")
		return
	}

	responses, err := h.services.OrderService.GetOrdersByStatus(r.Context(), status)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getOrdersByStatus")
		return
	}

	utils.WriteJSON(w, responses, http.StatusOK)
}

func (h *Handler) updateOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateOrderByID")
		return
	}

	var request models.UpdateOrderRequest
	if err = decodeJSON(r, &request); err != nil {
		h.writeError(w, r, err, "*Handler.updateOrderByID")
		return
	}

	response, err := h.services.OrderService.UpdateOrderByID(r.Context(), request, id)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateOrderByID")
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) deleteOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteOrderByID")
		return
	}

	if err = h.services.OrderService.DeleteOrderByID(r.Context(), id); err != nil {
		h.writeError(w, r, err, "*Handler.deleteOrderByID")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
