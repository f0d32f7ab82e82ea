package metadata

import (
	"net/http"
	"testing"

	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/dalemusser/impacthub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	f := testutil.NewFixtures(t)
	return NewHandler(f.Catalogs, zap.NewNop()), f
}

func TestServeMetadata(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest(http.MethodGet, "/api/metadata")
	rec := testutil.NewRecorder()
	h.ServeMetadata(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Sdgs        []models.Sdg        `json:"sdgs"`
		Departments []models.Department `json:"departments"`
		Researchers []models.Researcher `json:"researchers"`
	}
	rec.DecodeJSON(t, &resp)

	// The catalog always lists all seventeen goals, linked or not.
	if len(resp.Sdgs) != 17 {
		t.Errorf("sdgs: got %d, want 17", len(resp.Sdgs))
	}
	if len(resp.Departments) != 5 {
		t.Errorf("departments: got %d, want 5", len(resp.Departments))
	}
	if len(resp.Researchers) != 6 {
		t.Errorf("researchers: got %d, want 6", len(resp.Researchers))
	}
}

func TestHandleAddResearcher(t *testing.T) {
	h, _ := newTestHandler(t)

	body := map[string]string{"name": "Dr. Grace Kendi", "departmentId": "dept-4"}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/metadata/researchers", body)
	rec := testutil.NewRecorder()
	h.HandleAddResearcher(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Researcher models.Researcher `json:"researcher"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Researcher.ID == "" {
		t.Error("researcher id not assigned")
	}
	if resp.Researcher.Name != "Dr. Grace Kendi" || resp.Researcher.DepartmentID != "dept-4" {
		t.Errorf("researcher: got %+v", resp.Researcher)
	}
}

func TestHandleAddResearcherRejections(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]string
		expected string
	}{
		{
			name:     "blank name",
			body:     map[string]string{"name": "   ", "departmentId": "dept-1"},
			expected: "Validation failed.",
		},
		{
			name:     "missing department",
			body:     map[string]string{"name": "Dr. Grace Kendi"},
			expected: "Validation failed.",
		},
		{
			name:     "unknown department",
			body:     map[string]string{"name": "Dr. Grace Kendi", "departmentId": "dept-99"},
			expected: "Department does not exist.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			req := testutil.NewJSONRequest(t, http.MethodPost, "/api/metadata/researchers", tt.body)
			rec := testutil.NewRecorder()
			h.HandleAddResearcher(rec, req)

			rec.AssertStatus(t, http.StatusBadRequest)
			rec.AssertContains(t, tt.expected)
		})
	}
}

func TestHandleAddResearcherMalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest(http.MethodPost, "/api/metadata/researchers")
	req.Body = http.NoBody
	rec := testutil.NewRecorder()
	h.HandleAddResearcher(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Request body must be valid JSON.")
}
