// internal/app/store/catalogs/mongo.go
package catalogstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo backs the researcher roster with a MongoDB collection. The SDG and
// department tables stay compiled in: they are fixed reference data and
// storing them would only add a mutation surface the model forbids.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo returns a catalog store over the "researchers" collection.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("researchers")}
}

func (s *Mongo) Sdgs(ctx context.Context) ([]models.Sdg, error) {
	return SdgTable(), nil
}

func (s *Mongo) SdgByID(ctx context.Context, id int) (*models.Sdg, error) {
	return sdgByID(id), nil
}

func (s *Mongo) Departments(ctx context.Context) ([]models.Department, error) {
	return DepartmentTable(), nil
}

func (s *Mongo) DepartmentByID(ctx context.Context, id string) (*models.Department, error) {
	return departmentByID(id), nil
}

func (s *Mongo) Researchers(ctx context.Context) ([]models.Researcher, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Researcher
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Mongo) AddResearcher(ctx context.Context, name, departmentID string) (models.Researcher, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Researcher{}, ErrBlankName
	}
	if departmentByID(departmentID) == nil {
		return models.Researcher{}, ErrUnknownDepartment
	}

	r := models.Researcher{
		ID:           "res-" + uuid.NewString(),
		Name:         name,
		NameCI:       text.Fold(name),
		DepartmentID: departmentID,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, r); err != nil {
		return models.Researcher{}, err
	}
	return r, nil
}

// EnsureIndexes creates the indexes the researcher queries rely on.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name_ci", Value: 1}, {Key: "_id", Value: 1}},
	})
	return err
}

// EnsureSeed inserts the starter roster once, on first boot against an
// empty collection.
func (s *Mongo) EnsureSeed(ctx context.Context) error {
	n, err := s.c.CountDocuments(ctx, bson.M{})
	if err != nil || n > 0 {
		return err
	}
	docs := make([]interface{}, 0, 6)
	for _, r := range seedResearchers() {
		docs = append(docs, r)
	}
	_, err = s.c.InsertMany(ctx, docs)
	return err
}
