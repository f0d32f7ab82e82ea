// internal/app/reports/service.go

// Package reports derives the read-only reporting views from the record
// store and reference catalogs: the institution-wide summary, the per-SDG
// drill-down, and the fully resolved single-record view.
//
// All three builders are pure with respect to the store snapshot they read:
// identical data yields identical output (timestamps aside). Unknown ids
// produce nil results, never errors; the only error branch is a store read
// failure, which callers surface as a server fault.
package reports

import (
	"context"

	catalogstore "github.com/dalemusser/impacthub/internal/app/store/catalogs"
	recordstore "github.com/dalemusser/impacthub/internal/app/store/records"
	"github.com/dalemusser/impacthub/internal/domain/models"
)

// Service computes reporting views. It only reads from its stores and never
// mutates records or catalogs.
type Service struct {
	records  recordstore.Store
	catalogs catalogstore.Store
}

// NewService binds the reports service to its stores.
func NewService(records recordstore.Store, catalogs catalogstore.Store) *Service {
	return &Service{records: records, catalogs: catalogs}
}

// lookup bundles the catalog maps one snapshot of the joins works against.
type lookup struct {
	sdgs        map[int]models.Sdg
	departments map[string]models.Department
	researchers map[string]models.Researcher
}

func (s *Service) buildLookup(ctx context.Context) (*lookup, error) {
	sdgs, err := s.catalogs.Sdgs(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.catalogs.Departments(ctx)
	if err != nil {
		return nil, err
	}
	researchers, err := s.catalogs.Researchers(ctx)
	if err != nil {
		return nil, err
	}

	lk := &lookup{
		sdgs:        make(map[int]models.Sdg, len(sdgs)),
		departments: make(map[string]models.Department, len(departments)),
		researchers: make(map[string]models.Researcher, len(researchers)),
	}
	for _, g := range sdgs {
		lk.sdgs[g.ID] = g
	}
	for _, d := range departments {
		lk.departments[d.ID] = d
	}
	for _, r := range researchers {
		lk.researchers[r.ID] = r
	}
	return lk, nil
}

// resolve expands a record's foreign keys to full objects. Ids that no
// longer resolve are skipped rather than failing the whole view; the
// validator keeps the catalogs referentially closed, so in practice nothing
// is skipped.
func (lk *lookup) resolve(rec models.Record) models.ResolvedRecord {
	out := models.ResolvedRecord{
		Record:      rec.Clone(),
		Sdgs:        make([]models.Sdg, 0, len(rec.SdgIDs)),
		Researchers: make([]models.Researcher, 0, len(rec.ResearcherIDs)),
	}
	for _, id := range rec.SdgIDs {
		if g, ok := lk.sdgs[id]; ok {
			out.Sdgs = append(out.Sdgs, g)
		}
	}
	for _, id := range rec.ResearcherIDs {
		if r, ok := lk.researchers[id]; ok {
			out.Researchers = append(out.Researchers, r)
		}
	}
	if d, ok := lk.departments[rec.DepartmentID]; ok {
		out.Department = &d
	}
	return out
}
