package recordstore

import (
	"context"
	"strings"
	"testing"

	"github.com/dalemusser/impacthub/internal/domain/models"
)

func testRecord(title string) models.Record {
	return models.Record{
		Type:          models.TypeProject,
		Title:         title,
		Description:   "A long enough description for store-level testing.",
		Year:          2024,
		DepartmentID:  "dept-1",
		ResearcherIDs: []string{"res-1"},
		SdgIDs:        []int{1},
	}
}

func TestMemoryAddAssignsIdentity(t *testing.T) {
	store := NewMemory()

	stored, err := store.Add(context.Background(), testRecord("First"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !strings.HasPrefix(stored.ID, "rec-") {
		t.Errorf("id: got %q, want rec- prefix", stored.ID)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}

	again, err := store.Add(context.Background(), testRecord("Second"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if again.ID == stored.ID {
		t.Errorf("ids must be unique, both got %q", stored.ID)
	}
}

func TestMemoryListInsertionOrder(t *testing.T) {
	store := NewMemory()
	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		if _, err := store.Add(context.Background(), testRecord(title)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != len(titles) {
		t.Fatalf("len: got %d, want %d", len(list), len(titles))
	}
	for i, title := range titles {
		if list[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, list[i].Title, title)
		}
	}
}

func TestMemorySnapshotsAreIsolated(t *testing.T) {
	store := NewMemory()
	if _, err := store.Add(context.Background(), testRecord("Original")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	list[0].Title = "Mutated"
	list[0].SdgIDs[0] = 99

	fresh, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if fresh[0].Title != "Original" || fresh[0].SdgIDs[0] != 1 {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestMemoryGetByID(t *testing.T) {
	store := NewMemory()
	stored, err := store.Add(context.Background(), testRecord("Lookup"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := store.GetByID(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Title != "Lookup" {
		t.Errorf("got %+v", got)
	}

	missing, err := store.GetByID(context.Background(), "rec-missing")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if missing != nil {
		t.Errorf("absent id: got %+v, want nil", missing)
	}
}

func TestMemorySeeded(t *testing.T) {
	store := NewMemorySeeded()

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 4 {
		t.Fatalf("seeded records: got %d, want 4", len(list))
	}

	var projects, publications int
	for _, rec := range list {
		if rec.IsProject() {
			projects++
		} else {
			publications++
		}
	}
	if projects != 2 || publications != 2 {
		t.Errorf("seed mix: got %d projects / %d publications, want 2/2", projects, publications)
	}
}
