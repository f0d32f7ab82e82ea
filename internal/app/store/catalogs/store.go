// internal/app/store/catalogs/store.go
package catalogstore

import (
	"context"
	"errors"

	"github.com/dalemusser/impacthub/internal/domain/models"
)

var (
	// ErrBlankName is returned when a researcher is created without a name.
	ErrBlankName = errors.New("researcher name is required")
	// ErrUnknownDepartment is returned when a researcher references a
	// department that does not exist in the catalog.
	ErrUnknownDepartment = errors.New("department does not exist")
)

// Store provides read access to the reference catalogs (SDGs, departments,
// researchers) and the single growth path: adding a researcher. SDGs and
// departments are fixed tables; researchers accumulate over time and are
// immutable once created.
type Store interface {
	// Sdgs returns the full fixed SDG table, ascending by id.
	Sdgs(ctx context.Context) ([]models.Sdg, error)
	// SdgByID returns the SDG with the given id, or nil if unknown.
	SdgByID(ctx context.Context, id int) (*models.Sdg, error)

	// Departments returns the full department table.
	Departments(ctx context.Context) ([]models.Department, error)
	// DepartmentByID returns the department with the given id, or nil.
	DepartmentByID(ctx context.Context, id string) (*models.Department, error)

	// Researchers returns all researchers ordered by folded name.
	Researchers(ctx context.Context) ([]models.Researcher, error)
	// AddResearcher validates the department reference, assigns a fresh id,
	// and appends the researcher. Returns ErrBlankName or
	// ErrUnknownDepartment on bad input.
	AddResearcher(ctx context.Context, name, departmentID string) (models.Researcher, error)
}
