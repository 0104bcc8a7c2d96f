package widget

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the theme listing and the widget endpoints onto the
// given router.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/themes", h.Themes)

	r.Route("/widgets", func(r chi.Router) {
		r.Post("/", h.Mount)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Delete("/", h.Unmount)
			r.Post("/press", h.Press)
			r.Post("/sequence", h.Sequence)
		})
	})
}
