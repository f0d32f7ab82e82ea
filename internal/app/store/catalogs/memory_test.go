package catalogstore

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFixedTables(t *testing.T) {
	store := NewMemory()

	sdgs, err := store.Sdgs(context.Background())
	if err != nil {
		t.Fatalf("Sdgs: %v", err)
	}
	if len(sdgs) != 17 {
		t.Fatalf("sdg count: got %d, want 17", len(sdgs))
	}
	for i, sdg := range sdgs {
		if sdg.ID != i+1 {
			t.Errorf("sdg order: position %d has id %d", i, sdg.ID)
		}
	}

	departments, err := store.Departments(context.Background())
	if err != nil {
		t.Fatalf("Departments: %v", err)
	}
	if len(departments) != 5 {
		t.Fatalf("department count: got %d, want 5", len(departments))
	}

	// Returned tables are copies; mutating one must not corrupt the source.
	sdgs[0].Title = "Corrupted"
	fresh, _ := store.Sdgs(context.Background())
	if fresh[0].Title != "No Poverty" {
		t.Error("mutating a returned table leaked into the fixed data")
	}
}

func TestSdgByID(t *testing.T) {
	store := NewMemory()

	sdg, err := store.SdgByID(context.Background(), 13)
	if err != nil {
		t.Fatalf("SdgByID: %v", err)
	}
	if sdg == nil || sdg.Title != "Climate Action" {
		t.Errorf("got %+v", sdg)
	}

	for _, id := range []int{0, 18, -1, 999} {
		got, err := store.SdgByID(context.Background(), id)
		if err != nil {
			t.Fatalf("SdgByID(%d): %v", id, err)
		}
		if got != nil {
			t.Errorf("SdgByID(%d): got %+v, want nil", id, got)
		}
	}
}

func TestDepartmentByID(t *testing.T) {
	store := NewMemory()

	dep, err := store.DepartmentByID(context.Background(), "dept-2")
	if err != nil {
		t.Fatalf("DepartmentByID: %v", err)
	}
	if dep == nil || dep.Name != "School of Applied Human Sciences" {
		t.Errorf("got %+v", dep)
	}

	missing, err := store.DepartmentByID(context.Background(), "dept-99")
	if err != nil {
		t.Fatalf("DepartmentByID: %v", err)
	}
	if missing != nil {
		t.Errorf("unknown id: got %+v, want nil", missing)
	}
}

func TestAddResearcher(t *testing.T) {
	store := NewMemory()

	r, err := store.AddResearcher(context.Background(), "  Dr. Grace Kendi  ", "dept-2")
	if err != nil {
		t.Fatalf("AddResearcher: %v", err)
	}
	if !strings.HasPrefix(r.ID, "res-") {
		t.Errorf("id: got %q, want res- prefix", r.ID)
	}
	if r.Name != "Dr. Grace Kendi" {
		t.Errorf("name not trimmed: %q", r.Name)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}

	listed, err := store.Researchers(context.Background())
	if err != nil {
		t.Fatalf("Researchers: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != r.ID {
		t.Errorf("listing after add: got %+v", listed)
	}
}

func TestAddResearcherRejections(t *testing.T) {
	store := NewMemory()

	if _, err := store.AddResearcher(context.Background(), "   ", "dept-1"); !errors.Is(err, ErrBlankName) {
		t.Errorf("blank name: got %v, want ErrBlankName", err)
	}
	if _, err := store.AddResearcher(context.Background(), "Dr. Someone", "dept-99"); !errors.Is(err, ErrUnknownDepartment) {
		t.Errorf("unknown department: got %v, want ErrUnknownDepartment", err)
	}
}

func TestResearchersSortedByName(t *testing.T) {
	store := NewMemory()
	for _, name := range []string{"Zara Odhiambo", "amos Kiptoo", "Beatrice Njoka"} {
		if _, err := store.AddResearcher(context.Background(), name, "dept-1"); err != nil {
			t.Fatalf("AddResearcher(%q): %v", name, err)
		}
	}

	listed, err := store.Researchers(context.Background())
	if err != nil {
		t.Fatalf("Researchers: %v", err)
	}
	want := []string{"amos Kiptoo", "Beatrice Njoka", "Zara Odhiambo"}
	for i, name := range want {
		if listed[i].Name != name {
			t.Errorf("position %d: got %q, want %q (case-insensitive order)", i, listed[i].Name, name)
		}
	}
}

func TestSeededRoster(t *testing.T) {
	store := NewMemorySeeded()

	listed, err := store.Researchers(context.Background())
	if err != nil {
		t.Fatalf("Researchers: %v", err)
	}
	if len(listed) != 6 {
		t.Fatalf("seeded roster: got %d, want 6", len(listed))
	}
	for _, r := range listed {
		if departmentByID(r.DepartmentID) == nil {
			t.Errorf("researcher %s references unknown department %s", r.ID, r.DepartmentID)
		}
	}
}
