// internal/app/store/catalogs/reference.go
package catalogstore

import "github.com/dalemusser/impacthub/internal/domain/models"

// The SDG and department tables are fixed reference data loaded at process
// start. They are returned by copy so callers can never mutate them.

var sdgTable = []models.Sdg{
	{ID: 1, Code: "SDG 1", Title: "No Poverty"},
	{ID: 2, Code: "SDG 2", Title: "Zero Hunger"},
	{ID: 3, Code: "SDG 3", Title: "Good Health and Well-being"},
	{ID: 4, Code: "SDG 4", Title: "Quality Education"},
	{ID: 5, Code: "SDG 5", Title: "Gender Equality"},
	{ID: 6, Code: "SDG 6", Title: "Clean Water and Sanitation"},
	{ID: 7, Code: "SDG 7", Title: "Affordable and Clean Energy"},
	{ID: 8, Code: "SDG 8", Title: "Decent Work and Economic Growth"},
	{ID: 9, Code: "SDG 9", Title: "Industry, Innovation and Infrastructure"},
	{ID: 10, Code: "SDG 10", Title: "Reduced Inequalities"},
	{ID: 11, Code: "SDG 11", Title: "Sustainable Cities and Communities"},
	{ID: 12, Code: "SDG 12", Title: "Responsible Consumption and Production"},
	{ID: 13, Code: "SDG 13", Title: "Climate Action"},
	{ID: 14, Code: "SDG 14", Title: "Life Below Water"},
	{ID: 15, Code: "SDG 15", Title: "Life on Land"},
	{ID: 16, Code: "SDG 16", Title: "Peace, Justice and Strong Institutions"},
	{ID: 17, Code: "SDG 17", Title: "Partnerships for the Goals"},
}

var departmentTable = []models.Department{
	{ID: "dept-1", Name: "School of Business and Economics"},
	{ID: "dept-2", Name: "School of Applied Human Sciences"},
	{ID: "dept-3", Name: "School of Science, Engineering and Health"},
	{ID: "dept-4", Name: "School of Communication, Language and Performing Arts"},
	{ID: "dept-5", Name: "Institute for Leadership and Professional Development"},
}

// SdgTable returns a copy of the fixed SDG table.
func SdgTable() []models.Sdg {
	return append([]models.Sdg(nil), sdgTable...)
}

// DepartmentTable returns a copy of the fixed department table.
func DepartmentTable() []models.Department {
	return append([]models.Department(nil), departmentTable...)
}

func sdgByID(id int) *models.Sdg {
	for i := range sdgTable {
		if sdgTable[i].ID == id {
			s := sdgTable[i]
			return &s
		}
	}
	return nil
}

func departmentByID(id string) *models.Department {
	for i := range departmentTable {
		if departmentTable[i].ID == id {
			d := departmentTable[i]
			return &d
		}
	}
	return nil
}
