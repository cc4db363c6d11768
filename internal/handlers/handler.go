package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler interface {
	Register(router chi.Router)
}

// Group registers hs in an inline group of router behind the given middlewares.
func Group(router chi.Router, middlewares []func(http.Handler) http.Handler, hs ...Handler) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares...)
		for _, h := range hs {
			h.Register(r)
		}
	})
}
