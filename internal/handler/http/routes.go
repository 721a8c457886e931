package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)
		r.Post("/list", h.getOrdersByIDs)
		r.Get("/status/{status}", h.getOrdersByStatus)
		r.Get("/{id}", h.getOrderByID)
		r.Put("/{id}", h.updateOrderByID)
		r.Delete("/{id}", h.deleteOrderByID)
	})

	router.Get("/items/{id}", h.getItemByID)
	router.Get("/version", h.getServerVersion)

	return router
}
