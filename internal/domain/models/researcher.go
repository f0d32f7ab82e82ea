// internal/domain/models/researcher.go
package models

import "time"

// Researcher includes a case/diacritic-insensitive name field for
// search/sort, following the same pattern as the other stored entities.
// Researchers are created through the metadata intake endpoint and are
// immutable afterwards.
type Researcher struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	NameCI       string    `bson:"name_ci" json:"-"`
	DepartmentID string    `bson:"department_id" json:"departmentId"`
	CreatedAt    time.Time `bson:"created_at" json:"-"`
}
