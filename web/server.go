// Package web exposes the session service as a JSON API.
package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kai468/chupochess/session"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *session.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := &handlers{svc: s}
	r.Post("/games", h.create)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Get("/moves", h.moves)
		r.Post("/moves", h.play)
	})
	return r
}
