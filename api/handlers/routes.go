package handlers

import (
	"github.com/go-chi/chi/v5"
)

// Mount registers every endpoint on r.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/sequence", func(r chi.Router) {
			r.Post("/decode", h.Decode)
			r.Post("/complement", h.Complement)
			r.Post("/reverse-complement", h.ReverseComplement)
			r.Post("/transcribe", h.Transcribe)
			r.Post("/counts", h.Counts)
			r.Post("/stats", h.Stats)
		})

		r.Post("/protein/translate", h.Translate)
		r.Post("/palindromes", h.Palindromes)
		r.Post("/distance/hamming", h.Hamming)
		r.Post("/mendel/dominant", h.Dominant)
	})
}
