// internal/app/features/records/handler.go
package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/impacthub/internal/app/reports"
	catalogstore "github.com/dalemusser/impacthub/internal/app/store/catalogs"
	recordstore "github.com/dalemusser/impacthub/internal/app/store/records"
	"github.com/dalemusser/impacthub/internal/app/system/jsonutil"
	"github.com/dalemusser/impacthub/internal/app/system/validate"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	recordsShortTimeout = 5 * time.Second
	recordsMedTimeout   = 10 * time.Second
	maxBodyBytes        = 1 << 20 // 1 MB
)

// Handler is the feature-level entry point for record intake and lookup.
type Handler struct {
	Records  recordstore.Store
	Catalogs catalogstore.Store
	Reports  *reports.Service
	Log      *zap.Logger
}

// NewHandler constructs a records handler bound to its stores and the
// reports service.
func NewHandler(records recordstore.Store, catalogs catalogstore.Store, svc *reports.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Records:  records,
		Catalogs: catalogs,
		Reports:  svc,
		Log:      logger,
	}
}

// ServeRecord handles GET /api/records/{recordID} and returns the fully
// resolved record detail.
func (h *Handler) ServeRecord(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), recordsShortTimeout)
	defer cancel()

	recordID := chi.URLParam(r, "recordID")
	detail, err := h.Reports.BuildRecordDetail(ctx, recordID)
	if err != nil {
		h.Log.Error("build record detail failed", zap.String("record_id", recordID), zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}
	if detail == nil {
		jsonutil.WriteNotFound(w, "Record not found.")
		return
	}
	jsonutil.WriteJSON(w, http.StatusOK, detail)
}

// createResponse pairs the stored record's detail with a fresh summary so
// the submitting UI can refresh its dashboard without a second round trip.
type createResponse struct {
	Record  *models.RecordDetail `json:"record"`
	Summary *models.Summary      `json:"summary"`
}

// HandleCreate handles POST /api/records: validate, append, and return the
// resolved detail plus the recomputed summary.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), recordsMedTimeout)
	defer cancel()

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var payload validate.RecordPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		jsonutil.WriteError(w, http.StatusBadRequest, "Request body must be valid JSON.", nil)
		return
	}

	rec, err := validate.Record(ctx, h.Catalogs, payload)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			jsonutil.WriteError(w, http.StatusBadRequest, "Validation failed.", verr.Fields)
			return
		}
		h.Log.Error("record validation failed unexpectedly", zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}

	stored, err := h.Records.Add(ctx, rec)
	if err != nil {
		h.Log.Error("store record failed", zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}

	detail, err := h.Reports.BuildRecordDetail(ctx, stored.ID)
	if err != nil {
		h.Log.Error("build record detail failed", zap.String("record_id", stored.ID), zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}
	summary, err := h.Reports.BuildSummary(ctx)
	if err != nil {
		h.Log.Error("build summary failed", zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}

	h.Log.Info("record created",
		zap.String("record_id", stored.ID),
		zap.String("type", stored.Type),
		zap.Int("sdg_count", len(stored.SdgIDs)))

	jsonutil.WriteJSON(w, http.StatusCreated, createResponse{Record: detail, Summary: summary})
}
