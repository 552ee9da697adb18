// Package api exposes the planner over HTTP. It is a thin presentation seam:
// every response is derived from the card store's projections, and every
// mutation goes through the planner so the collection is persisted in full.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tkumagai/tabiplan"
)

// Server serves the itinerary API.
type Server struct {
	planner *tabiplan.Planner
}

// NewServer creates a server over the given planner.
func NewServer(p *tabiplan.Planner) *Server {
	return &Server{planner: p}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/days", s.handleDays)
		r.Route("/days/{day}", func(r chi.Router) {
			r.Get("/cards", s.handleDayCards)
			r.Get("/total", s.handleDayTotal)
			r.Get("/view", s.handleDayView)
		})
		r.Route("/cards", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			r.Post("/", s.handleAddCard)
			r.Post("/{id}/toggle", s.handleToggle)
			r.Post("/{id}/expenses", s.handleAddExpense)
		})
	})

	return router
}
