// internal/app/store/catalogs/memory.go
package catalogstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
)

// Memory is the in-process catalog store. It is the default backend and the
// one handler tests construct fresh per test.
type Memory struct {
	mu          sync.RWMutex
	researchers []models.Researcher
}

// NewMemory returns an empty in-memory catalog store (fixed tables only).
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemorySeeded returns an in-memory catalog store preloaded with the
// starter researcher roster.
func NewMemorySeeded() *Memory {
	m := &Memory{}
	m.researchers = seedResearchers()
	return m
}

func (m *Memory) Sdgs(ctx context.Context) ([]models.Sdg, error) {
	return SdgTable(), nil
}

func (m *Memory) SdgByID(ctx context.Context, id int) (*models.Sdg, error) {
	return sdgByID(id), nil
}

func (m *Memory) Departments(ctx context.Context) ([]models.Department, error) {
	return DepartmentTable(), nil
}

func (m *Memory) DepartmentByID(ctx context.Context, id string) (*models.Department, error) {
	return departmentByID(id), nil
}

func (m *Memory) Researchers(ctx context.Context) ([]models.Researcher, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := append([]models.Researcher(nil), m.researchers...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].NameCI != out[j].NameCI {
			return out[i].NameCI < out[j].NameCI
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) AddResearcher(ctx context.Context, name, departmentID string) (models.Researcher, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Researcher{}, ErrBlankName
	}
	if departmentByID(departmentID) == nil {
		return models.Researcher{}, ErrUnknownDepartment
	}

	r := models.Researcher{
		ID:           "res-" + uuid.NewString(),
		Name:         name,
		NameCI:       text.Fold(name),
		DepartmentID: departmentID,
		CreatedAt:    time.Now().UTC(),
	}

	m.mu.Lock()
	m.researchers = append(m.researchers, r)
	m.mu.Unlock()

	return r, nil
}
