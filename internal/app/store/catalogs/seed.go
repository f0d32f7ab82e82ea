// internal/app/store/catalogs/seed.go
package catalogstore

import (
	"time"

	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
)

// seedResearchers returns the starter roster used by the memory backend so
// a fresh deployment has data to report on.
func seedResearchers() []models.Researcher {
	now := time.Now().UTC()
	seed := []struct {
		id, name, dept string
	}{
		{"res-1", "Dr. Amina Owino", "dept-1"},
		{"res-2", "Prof. Daniel Mwangi", "dept-3"},
		{"res-3", "Dr. Faith Wambui", "dept-2"},
		{"res-4", "Dr. John Muriuki", "dept-3"},
		{"res-5", "Prof. Sheila Njeri", "dept-4"},
		{"res-6", "Dr. Dennis Onyango", "dept-5"},
	}

	out := make([]models.Researcher, 0, len(seed))
	for _, s := range seed {
		out = append(out, models.Researcher{
			ID:           s.id,
			Name:         s.name,
			NameCI:       text.Fold(s.name),
			DepartmentID: s.dept,
			CreatedAt:    now,
		})
	}
	return out
}
