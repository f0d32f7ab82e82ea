// internal/domain/models/reportviews.go
package models

import "time"

// The report view types are derived, read-only shapes produced by the
// reports service. They are owned by the caller and never written back.

// SdgSummary is one row of the institution-wide summary: activity counts
// for a single SDG. SDGs with zero linked records do not get a row.
type SdgSummary struct {
	ID               int    `json:"id"`
	Code             string `json:"code"`
	Title            string `json:"title"`
	ProjectCount     int    `json:"projectCount"`
	PublicationCount int    `json:"publicationCount"`
	DepartmentCount  int    `json:"departmentCount"`
	ResearcherCount  int    `json:"researcherCount"`
}

// Totals holds distinct counts over the entire record store, independent of
// the per-SDG rows.
type Totals struct {
	Projects     int `json:"projects"`
	Publications int `json:"publications"`
	Departments  int `json:"departments"`
	Researchers  int `json:"researchers"`
}

// Summary is the institution-wide aggregate view, one row per SDG with
// non-zero activity, sorted ascending by SDG id.
type Summary struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	Sdgs        []SdgSummary `json:"sdgs"`
	Totals      Totals       `json:"totals"`
}

// ResolvedRecord is a record with its foreign keys expanded to full
// objects. It is the shape consumed by detail panels and exports.
type ResolvedRecord struct {
	Record
	Sdgs        []Sdg        `json:"sdgs"`
	Department  *Department  `json:"department"`
	Researchers []Researcher `json:"researchers"`
}

// RecordDetail is the fully joined single-record view.
type RecordDetail = ResolvedRecord

// SdgStats holds the distinct counts for a single SDG drill-down.
type SdgStats struct {
	Projects     int `json:"projects"`
	Publications int `json:"publications"`
	Departments  int `json:"departments"`
	Researchers  int `json:"researchers"`
}

// SdgDetail is the drill-down view for one SDG: every linked record fully
// resolved, partitioned by type, plus the deduplicated participants.
type SdgDetail struct {
	Sdg          Sdg              `json:"sdg"`
	Stats        SdgStats         `json:"stats"`
	Projects     []ResolvedRecord `json:"projects"`
	Publications []ResolvedRecord `json:"publications"`
	Departments  []Department     `json:"departments"`
	Researchers  []Researcher     `json:"researchers"`
}
