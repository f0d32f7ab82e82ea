package records

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/dalemusser/impacthub/internal/app/reports"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/dalemusser/impacthub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	f := testutil.NewFixtures(t)
	svc := reports.NewService(f.Records, f.Catalogs)
	return NewHandler(f.Records, f.Catalogs, svc, zap.NewNop()), f
}

func validBody() map[string]any {
	return map[string]any{
		"title":         "Digital Literacy for Rural Teachers",
		"description":   "Trains teachers in digital pedagogy across partner schools and tracks outcomes.",
		"type":          "project",
		"year":          2024,
		"departmentId":  "dept-2",
		"researcherIds": []string{"res-3"},
		"sdgIds":        []int{4},
	}
}

func TestHandleCreate(t *testing.T) {
	h, f := newTestHandler(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/records", validBody())
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusCreated)

	var resp struct {
		Record  *models.RecordDetail `json:"record"`
		Summary *models.Summary      `json:"summary"`
	}
	rec.DecodeJSON(t, &resp)

	if resp.Record == nil {
		t.Fatal("response missing record")
	}
	if !strings.HasPrefix(resp.Record.ID, "rec-") {
		t.Errorf("record id: got %q", resp.Record.ID)
	}
	if resp.Record.Department == nil || resp.Record.Department.ID != "dept-2" {
		t.Errorf("department not resolved: %+v", resp.Record.Department)
	}
	if resp.Summary == nil {
		t.Fatal("response missing summary")
	}
	if resp.Summary.Totals.Projects != 1 {
		t.Errorf("summary totals: got %+v", resp.Summary.Totals)
	}

	// The record must actually be in the store.
	list, err := f.Records.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("store size after create: got %d, want 1", len(list))
	}
}

func TestHandleCreateValidationFailure(t *testing.T) {
	h, f := newTestHandler(t)

	body := validBody()
	body["description"] = "Too short."
	body["sdgIds"] = []int{}

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/records", body)
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)

	var resp struct {
		Message string              `json:"message"`
		Details map[string][]string `json:"details"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Message != "Validation failed." {
		t.Errorf("message: got %q", resp.Message)
	}
	if len(resp.Details["description"]) == 0 || len(resp.Details["sdgIds"]) == 0 {
		t.Errorf("details must name every violated field, got %v", resp.Details)
	}

	// Nothing may reach the store on a rejected submission.
	list, err := f.Records.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("store size after rejection: got %d, want 0", len(list))
	}
}

func TestHandleCreateMalformedJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewRequest(http.MethodPost, "/api/records")
	req.Body = http.NoBody
	rec := testutil.NewRecorder()
	h.HandleCreate(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "Request body must be valid JSON.")
}

func TestServeRecord(t *testing.T) {
	h, f := newTestHandler(t)
	stored := f.AddProject(context.Background(), "Coastal Mangrove Restoration", "dept-5", []string{"res-6"}, []int{14, 15})

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/api/records/"+stored.ID), "recordID", stored.ID)
	rec := testutil.NewRecorder()
	h.ServeRecord(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	var detail models.RecordDetail
	rec.DecodeJSON(t, &detail)
	if detail.ID != stored.ID {
		t.Errorf("id: got %q, want %q", detail.ID, stored.ID)
	}
	if len(detail.Sdgs) != 2 {
		t.Errorf("resolved sdgs: got %d, want 2", len(detail.Sdgs))
	}
}

func TestServeRecordNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.WithChiURLParam(testutil.NewRequest(http.MethodGet, "/api/records/rec-missing"), "recordID", "rec-missing")
	rec := testutil.NewRecorder()
	h.ServeRecord(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertContains(t, "Record not found.")
}
