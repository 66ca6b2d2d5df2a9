package handlers

import "github.com/go-chi/chi/v5"

// Handler is implemented by every feature package that mounts routes.
type Handler interface {
	Register(router chi.Router)
}
