// internal/app/store/records/seed.go
package recordstore

import (
	"time"

	"github.com/dalemusser/impacthub/internal/domain/models"
)

// seedRecords returns the starter records the memory backend boots with so
// the summary and drill-down views render immediately on a fresh install.
func seedRecords() []models.Record {
	now := time.Now().UTC()
	return []models.Record{
		{
			ID:    "proj-1",
			Type:  models.TypeProject,
			Title: "Community Microfinance Accelerator",
			Description: "Extends microfinance access to women-led MSMEs across Machakos and Kajiado, " +
				"combining financial literacy with product innovation.",
			Year:          2024,
			DepartmentID:  "dept-1",
			ResearcherIDs: []string{"res-1", "res-2"},
			SdgIDs:        []int{1, 5, 8},
			CreatedAt:     now,
		},
		{
			ID:    "pub-1",
			Type:  models.TypePublication,
			Title: "Clean Energy Adoption Models for Universities",
			Description: "Published in the East African Energy Review, outlining financing, regulatory, " +
				"and operational considerations for campus microgrids.",
			Year:          2023,
			DepartmentID:  "dept-3",
			ResearcherIDs: []string{"res-2", "res-4"},
			SdgIDs:        []int{7, 9, 13},
			CreatedAt:     now,
		},
		{
			ID:    "proj-2",
			Type:  models.TypeProject,
			Title: "Inclusive Education Technology Initiative",
			Description: "Deployment of assistive education platforms in rural Kenyan schools, " +
				"co-designed with the Ministry of Education and NGOs.",
			Year:          2025,
			DepartmentID:  "dept-2",
			ResearcherIDs: []string{"res-3", "res-5"},
			SdgIDs:        []int{4, 10},
			CreatedAt:     now,
		},
		{
			ID:    "pub-2",
			Type:  models.TypePublication,
			Title: "Climate-resilient Urban Agriculture Framework",
			Description: "Empirical evidence on rooftop farming adoption and policy incentives to " +
				"lower food import dependency.",
			Year:          2022,
			DepartmentID:  "dept-5",
			ResearcherIDs: []string{"res-6"},
			SdgIDs:        []int{2, 11, 13},
			CreatedAt:     now,
		},
	}
}
