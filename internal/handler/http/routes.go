package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	router.Use(withGZip)

	// every route authenticates from the request body, no auth middleware
	router.Post("/user", h.registerUser)
	router.Post("/event", h.createEvent)
	router.Delete("/event/{event_id}", h.deleteEvent)
	router.Post("/events", h.queryEvents)

	router.Method("GET", "/metrics", promhttp.Handler())

	return router
}
