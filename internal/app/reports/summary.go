// internal/app/reports/summary.go
package reports

import (
	"context"
	"time"

	"github.com/dalemusser/impacthub/internal/domain/models"
)

// BuildSummary computes the institution-wide summary: one row per SDG with
// at least one linked record, ascending by id, plus distinct-count totals
// over the whole store.
//
// An SDG with zero linked records is omitted from the rows on purpose, so
// reporting UIs only show active goals; the raw catalog from the metadata
// endpoint still lists all seventeen.
func (s *Service) BuildSummary(ctx context.Context) (*models.Summary, error) {
	sdgs, err := s.catalogs.Sdgs(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		GeneratedAt: time.Now().UTC(),
		Sdgs:        []models.SdgSummary{},
	}

	// The catalog is already ascending by id, which fixes the row order.
	for _, sdg := range sdgs {
		var projects, publications int
		departments := make(map[string]struct{})
		researchers := make(map[string]struct{})
		linked := false

		for _, rec := range records {
			if !rec.HasSdg(sdg.ID) {
				continue
			}
			linked = true
			if rec.IsProject() {
				projects++
			} else {
				publications++
			}
			departments[rec.DepartmentID] = struct{}{}
			for _, rid := range rec.ResearcherIDs {
				researchers[rid] = struct{}{}
			}
		}
		if !linked {
			continue
		}

		summary.Sdgs = append(summary.Sdgs, models.SdgSummary{
			ID:               sdg.ID,
			Code:             sdg.Code,
			Title:            sdg.Title,
			ProjectCount:     projects,
			PublicationCount: publications,
			DepartmentCount:  len(departments),
			ResearcherCount:  len(researchers),
		})
	}

	// Totals are independent distinct counts over the entire store, not a
	// sum of the per-SDG rows, so shared researchers and departments are
	// never double counted.
	allDepartments := make(map[string]struct{})
	allResearchers := make(map[string]struct{})
	for _, rec := range records {
		if rec.IsProject() {
			summary.Totals.Projects++
		} else {
			summary.Totals.Publications++
		}
		allDepartments[rec.DepartmentID] = struct{}{}
		for _, rid := range rec.ResearcherIDs {
			allResearchers[rid] = struct{}{}
		}
	}
	summary.Totals.Departments = len(allDepartments)
	summary.Totals.Researchers = len(allResearchers)

	return summary, nil
}
