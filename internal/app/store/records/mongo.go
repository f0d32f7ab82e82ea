// internal/app/store/records/mongo.go
package recordstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/impacthub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo backs the record collection with MongoDB. Records are insert-only;
// insertion order is recovered by sorting on created_at with _id as the
// tie-breaker.
type Mongo struct {
	c *mongo.Collection
}

// NewMongo returns a record store over the "records" collection.
func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{c: db.Collection("records")}
}

func (s *Mongo) List(ctx context.Context) ([]models.Record, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Record
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Mongo) GetByID(ctx context.Context, id string) (*models.Record, error) {
	var rec models.Record
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Mongo) Add(ctx context.Context, rec models.Record) (models.Record, error) {
	rec = rec.Clone()
	rec.ID = "rec-" + uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return models.Record{}, err
	}
	return rec, nil
}

// EnsureIndexes creates the index the ordered list query relies on.
func (s *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
	})
	return err
}
