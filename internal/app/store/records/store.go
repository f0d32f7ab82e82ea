// internal/app/store/records/store.go
package recordstore

import (
	"context"

	"github.com/dalemusser/impacthub/internal/domain/models"
)

// Store is the append-only collection of project/publication records.
//
// List returns a snapshot in insertion order; Add assigns the id and
// timestamp and must never overwrite or reorder existing records. Absence
// in GetByID is a nil result, not an error — only infrastructure faults
// surface as errors.
type Store interface {
	List(ctx context.Context) ([]models.Record, error)
	GetByID(ctx context.Context, id string) (*models.Record, error)
	Add(ctx context.Context, rec models.Record) (models.Record, error)
}
