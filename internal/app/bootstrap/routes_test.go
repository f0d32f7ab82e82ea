package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

// buildMemoryHandler assembles the full router on the seeded memory
// backend, the same path a default deployment takes.
func buildMemoryHandler(t *testing.T) http.Handler {
	t.Helper()

	appCfg := AppConfig{StoreBackend: "memory"}
	h, err := BuildHandler(nil, appCfg, DBDeps{}, zap.NewNop())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}
	return h
}

func TestRouterEndpoints(t *testing.T) {
	h := buildMemoryHandler(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/health", http.StatusOK, `"database":"memory"`},
		{"metadata", http.MethodGet, "/api/metadata", http.StatusOK, `"sdgs"`},
		{"summary", http.MethodGet, "/api/reports/summary", http.StatusOK, `"generatedAt"`},
		{"summary csv", http.MethodGet, "/api/reports/summary.csv", http.StatusOK, "SDG,Code,Title"},
		{"sdg detail", http.MethodGet, "/api/reports/sdg/13", http.StatusOK, `"Climate Action"`},
		{"sdg detail csv", http.MethodGet, "/api/reports/sdg/13.csv", http.StatusOK, "Type,Title,Year"},
		{"sdg detail unknown", http.MethodGet, "/api/reports/sdg/999", http.StatusNotFound, "SDG not found."},
		{"seeded record", http.MethodGet, "/api/records/proj-1", http.StatusOK, "Community Microfinance Accelerator"},
		{"record unknown", http.MethodGet, "/api/records/rec-missing", http.StatusNotFound, "Record not found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q: %s", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRouterCreateRecord(t *testing.T) {
	h := buildMemoryHandler(t)

	body := `{
		"title": "Urban Heat Mapping",
		"description": "Maps heat islands across Nairobi estates using low-cost sensors.",
		"type": "project",
		"year": 2025,
		"departmentId": "dept-3",
		"researcherIds": ["res-2"],
		"sdgIds": [11, 13]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (body: %s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	for _, want := range []string{`"record"`, `"summary"`, "Urban Heat Mapping"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("body missing %s", want)
		}
	}
}
