// internal/app/system/validate/researcher.go
package validate

import "strings"

// ResearcherPayload is the intake shape for adding a researcher.
type ResearcherPayload struct {
	Name         string `json:"name"`
	DepartmentID string `json:"departmentId"`
}

// Researcher runs the structural checks for a researcher submission. The
// department's existence is checked by the catalog store on insert.
func Researcher(payload ResearcherPayload) error {
	verr := &Error{}
	if strings.TrimSpace(payload.Name) == "" {
		verr.add("name", "Researcher name is required.")
	}
	if strings.TrimSpace(payload.DepartmentID) == "" {
		verr.add("departmentId", "Department is required.")
	}
	if !verr.empty() {
		return verr
	}
	return nil
}
