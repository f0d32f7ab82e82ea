// internal/app/features/reports/routes.go
package reports

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter mounted under /api/reports.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/summary", h.ServeSummary)
	r.Get("/summary.csv", h.ServeSummaryCSV)
	r.Get("/sdg/{sdgID}", h.ServeSdgDetail)
	r.Get("/sdg/{sdgID}.csv", h.ServeSdgDetailCSV)
	return r
}
