// internal/app/features/metadata/routes.go
package metadata

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/metadata.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeMetadata)
	r.Post("/researchers", h.HandleAddResearcher)
	return r
}
