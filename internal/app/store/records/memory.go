// internal/app/store/records/memory.go
package recordstore

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/google/uuid"
)

// Memory holds records in process memory. Snapshots are deep copies, so a
// caller can never observe a half-written record or mutate stored state.
type Memory struct {
	mu      sync.RWMutex
	records []models.Record
}

// NewMemory returns an empty in-memory record store.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemorySeeded returns an in-memory record store preloaded with the
// starter records.
func NewMemorySeeded() *Memory {
	return &Memory{records: seedRecords()}
}

func (m *Memory) List(ctx context.Context) ([]models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r.Clone())
	}
	return out, nil
}

func (m *Memory) GetByID(ctx context.Context, id string) (*models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.records {
		if r.ID == id {
			c := r.Clone()
			return &c, nil
		}
	}
	return nil, nil
}

func (m *Memory) Add(ctx context.Context, rec models.Record) (models.Record, error) {
	rec = rec.Clone()
	rec.ID = "rec-" + uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	m.mu.Lock()
	m.records = append(m.records, rec)
	m.mu.Unlock()

	return rec.Clone(), nil
}
