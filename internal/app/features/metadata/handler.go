// internal/app/features/metadata/handler.go
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	catalogstore "github.com/dalemusser/impacthub/internal/app/store/catalogs"
	"github.com/dalemusser/impacthub/internal/app/system/jsonutil"
	"github.com/dalemusser/impacthub/internal/app/system/validate"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	metadataShortTimeout = 5 * time.Second
	maxBodyBytes         = 1 << 20 // 1 MB
)

// Handler serves the reference catalogs and the researcher intake.
type Handler struct {
	Catalogs catalogstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a metadata handler bound to the catalog store.
func NewHandler(catalogs catalogstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Catalogs: catalogs, Log: logger}
}

// metadataResponse is the JSON shape for GET /api/metadata.
type metadataResponse struct {
	Sdgs        []models.Sdg        `json:"sdgs"`
	Departments []models.Department `json:"departments"`
	Researchers []models.Researcher `json:"researchers"`
}

// ServeMetadata handles GET /api/metadata. It returns the full catalogs,
// including SDGs with no linked records; the summary's omission policy does
// not apply here.
func (h *Handler) ServeMetadata(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), metadataShortTimeout)
	defer cancel()

	sdgs, err := h.Catalogs.Sdgs(ctx)
	if err != nil {
		h.Log.Error("load SDG catalog failed", zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}
	departments, err := h.Catalogs.Departments(ctx)
	if err != nil {
		h.Log.Error("load department catalog failed", zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}
	researchers, err := h.Catalogs.Researchers(ctx)
	if err != nil {
		h.Log.Error("load researchers failed", zap.Error(err))
		jsonutil.WriteServerError(w)
		return
	}

	jsonutil.WriteJSON(w, http.StatusOK, metadataResponse{
		Sdgs:        sdgs,
		Departments: departments,
		Researchers: researchers,
	})
}

// HandleAddResearcher handles POST /api/metadata/researchers.
func (h *Handler) HandleAddResearcher(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), metadataShortTimeout)
	defer cancel()

	var payload validate.ResearcherPayload
	if err := decodeBody(w, r, &payload); err != nil {
		jsonutil.WriteError(w, http.StatusBadRequest, "Request body must be valid JSON.", nil)
		return
	}

	if err := validate.Researcher(payload); err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			jsonutil.WriteError(w, http.StatusBadRequest, "Validation failed.", verr.Fields)
			return
		}
		jsonutil.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	researcher, err := h.Catalogs.AddResearcher(ctx, payload.Name, payload.DepartmentID)
	if err != nil {
		switch {
		case errors.Is(err, catalogstore.ErrBlankName):
			jsonutil.WriteError(w, http.StatusBadRequest, "Researcher name is required.", nil)
		case errors.Is(err, catalogstore.ErrUnknownDepartment):
			jsonutil.WriteError(w, http.StatusBadRequest, "Department does not exist.", nil)
		default:
			h.Log.Error("add researcher failed", zap.Error(err))
			jsonutil.WriteServerError(w)
		}
		return
	}

	h.Log.Info("researcher created",
		zap.String("researcher_id", researcher.ID),
		zap.String("department_id", researcher.DepartmentID))

	jsonutil.WriteJSON(w, http.StatusCreated, map[string]models.Researcher{"researcher": researcher})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}
