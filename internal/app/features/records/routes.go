// internal/app/features/records/routes.go
package records

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/records.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreate)
	r.Get("/{recordID}", h.ServeRecord)
	return r
}
