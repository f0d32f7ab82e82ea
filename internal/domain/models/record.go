// internal/domain/models/record.go
package models

import "time"

// Record types. A record is either a project or a publication; the type is
// fixed at creation.
const (
	TypeProject     = "project"
	TypePublication = "publication"
)

// Record is the central entity: a project or publication tagged with one
// department, one or more researchers, and one or more SDGs.
//
// NOTE:
//   - Records are append-only. There is no update or delete path; the
//     store must never overwrite or reorder existing records.
//   - SdgIDs and ResearcherIDs are deduplicated and sorted at validation
//     time, before a record reaches a store.
type Record struct {
	ID            string    `bson:"_id" json:"id"`
	Type          string    `bson:"type" json:"type"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Year          int       `bson:"year" json:"year"`
	DepartmentID  string    `bson:"department_id" json:"departmentId"`
	ResearcherIDs []string  `bson:"researcher_ids" json:"researcherIds"`
	SdgIDs        []int     `bson:"sdg_ids" json:"sdgIds"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
}

// IsProject reports whether the record is a project.
func (r Record) IsProject() bool { return r.Type == TypeProject }

// HasSdg reports whether the record is tagged with the given SDG id.
func (r Record) HasSdg(sdgID int) bool {
	for _, id := range r.SdgIDs {
		if id == sdgID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so store snapshots never alias caller slices.
func (r Record) Clone() Record {
	out := r
	out.ResearcherIDs = append([]string(nil), r.ResearcherIDs...)
	out.SdgIDs = append([]int(nil), r.SdgIDs...)
	return out
}
