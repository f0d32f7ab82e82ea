// internal/app/reports/detail.go
package reports

import (
	"context"

	"github.com/dalemusser/impacthub/internal/domain/models"
)

// BuildSdgDetail computes the drill-down view for one SDG: every linked
// record fully resolved and partitioned by type, plus deduplicated
// participant lists. Returns (nil, nil) when the id is not in the catalog.
func (s *Service) BuildSdgDetail(ctx context.Context, sdgID int) (*models.SdgDetail, error) {
	sdg, err := s.catalogs.SdgByID(ctx, sdgID)
	if err != nil {
		return nil, err
	}
	if sdg == nil {
		return nil, nil
	}

	lk, err := s.buildLookup(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	detail := &models.SdgDetail{
		Sdg:          *sdg,
		Projects:     []models.ResolvedRecord{},
		Publications: []models.ResolvedRecord{},
		Departments:  []models.Department{},
		Researchers:  []models.Researcher{},
	}

	// Dedup participants at the SDG level, keeping first-appearance order.
	seenDepartments := make(map[string]struct{})
	seenResearchers := make(map[string]struct{})

	for _, rec := range records {
		if !rec.HasSdg(sdgID) {
			continue
		}
		resolved := lk.resolve(rec)
		if resolved.IsProject() {
			detail.Projects = append(detail.Projects, resolved)
		} else {
			detail.Publications = append(detail.Publications, resolved)
		}
		if resolved.Department != nil {
			if _, ok := seenDepartments[resolved.Department.ID]; !ok {
				seenDepartments[resolved.Department.ID] = struct{}{}
				detail.Departments = append(detail.Departments, *resolved.Department)
			}
		}
		for _, r := range resolved.Researchers {
			if _, ok := seenResearchers[r.ID]; !ok {
				seenResearchers[r.ID] = struct{}{}
				detail.Researchers = append(detail.Researchers, r)
			}
		}
	}

	detail.Stats = models.SdgStats{
		Projects:     len(detail.Projects),
		Publications: len(detail.Publications),
		Departments:  len(detail.Departments),
		Researchers:  len(detail.Researchers),
	}
	return detail, nil
}

// BuildRecordDetail resolves one record into the fully joined view used by
// detail modals and exports. Returns (nil, nil) when the record is absent.
func (s *Service) BuildRecordDetail(ctx context.Context, recordID string) (*models.RecordDetail, error) {
	rec, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	lk, err := s.buildLookup(ctx)
	if err != nil {
		return nil, err
	}
	detail := lk.resolve(*rec)
	return &detail, nil
}
