package testutil

import (
	"context"
	"net/http"
	"testing"

	catalogstore "github.com/dalemusser/impacthub/internal/app/store/catalogs"
	recordstore "github.com/dalemusser/impacthub/internal/app/store/records"
	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for loading test data into the
// in-memory stores.
type Fixtures struct {
	Records  *recordstore.Memory
	Catalogs *catalogstore.Memory
	t        *testing.T
}

// NewFixtures creates fresh empty memory stores for a test.
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	return &Fixtures{
		Records:  recordstore.NewMemory(),
		Catalogs: catalogstore.NewMemorySeeded(),
		t:        t,
	}
}

// AddRecord stores a record and returns it with its assigned id.
func (f *Fixtures) AddRecord(ctx context.Context, rec models.Record) models.Record {
	f.t.Helper()

	stored, err := f.Records.Add(ctx, rec)
	if err != nil {
		f.t.Fatalf("failed to add test record: %v", err)
	}
	return stored
}

// AddProject stores a project record linking the given department,
// researchers, and SDGs.
func (f *Fixtures) AddProject(ctx context.Context, title, deptID string, researcherIDs []string, sdgIDs []int) models.Record {
	f.t.Helper()
	return f.AddRecord(ctx, models.Record{
		Type:          models.TypeProject,
		Title:         title,
		Description:   "Test project description with enough length to pass checks.",
		Year:          2024,
		DepartmentID:  deptID,
		ResearcherIDs: researcherIDs,
		SdgIDs:        sdgIDs,
	})
}

// AddPublication stores a publication record linking the given department,
// researchers, and SDGs.
func (f *Fixtures) AddPublication(ctx context.Context, title, deptID string, researcherIDs []string, sdgIDs []int) models.Record {
	f.t.Helper()
	return f.AddRecord(ctx, models.Record{
		Type:          models.TypePublication,
		Title:         title,
		Description:   "Test publication description with enough length to pass checks.",
		Year:          2023,
		DepartmentID:  deptID,
		ResearcherIDs: researcherIDs,
		SdgIDs:        sdgIDs,
	})
}

// AddResearcher stores a researcher in the catalog store.
func (f *Fixtures) AddResearcher(ctx context.Context, name, deptID string) models.Researcher {
	f.t.Helper()

	r, err := f.Catalogs.AddResearcher(ctx, name, deptID)
	if err != nil {
		f.t.Fatalf("failed to add test researcher: %v", err)
	}
	return r
}
