package wire

import (
	"museumpass/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMuseum(r chi.Router, museumHandler *adaptor.MuseumHandler) {
	r.Route("/museums", func(r chi.Router) {
		// GET /museums?page=&per_page=&location=
		r.Get("/", museumHandler.ListMuseums)

		// GET /museums/availability?museum=&date=
		r.Get("/availability", museumHandler.Availability)
	})
}
