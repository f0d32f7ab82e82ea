// internal/app/features/reports/handler.go
package reports

import (
	"context"
	"net/http"
	"strconv"
	"time"

	reportsvc "github.com/dalemusser/impacthub/internal/app/reports"
	"github.com/dalemusser/impacthub/internal/app/system/jsonutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const reportsMedTimeout = 10 * time.Second

// Handler serves the aggregate reporting views and their CSV exports.
type Handler struct {
	Reports *reportsvc.Service
	Log     *zap.Logger
}

// NewHandler constructs a reports handler bound to the reports service.
func NewHandler(svc *reportsvc.Service, logger *zap.Logger) *Handler {
	return &Handler{Reports: svc, Log: logger}
}

// ServeSummary handles GET /api/reports/summary.
func (h *Handler) ServeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), reportsMedTimeout)
	defer cancel()

	summary, err := h.Reports.BuildSummary(ctx)
	if err != nil {
		h.Log.Error("build summary failed", zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, summary)
}

// ServeSdgDetail handles GET /api/reports/sdg/{sdgID}. A non-numeric or
// unknown id is a 404, not a server fault.
func (h *Handler) ServeSdgDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), reportsMedTimeout)
	defer cancel()

	sdgID, ok := parseSdgID(r)
	if !ok {
		jsonutil.WriteNotFound(w, "SDG not found.")
		return
	}

	detail, err := h.Reports.BuildSdgDetail(ctx, sdgID)
	if err != nil {
		h.Log.Error("build SDG detail failed", zap.Int("sdg_id", sdgID), zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}
	if detail == nil {
		jsonutil.WriteNotFound(w, "SDG not found.")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, detail)
}

func parseSdgID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "sdgID"))
	if err != nil {
		return 0, false
	}
	return id, true
}
