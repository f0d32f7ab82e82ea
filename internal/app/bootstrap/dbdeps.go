// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
//
// Both fields are nil when the memory store backend is selected; handlers
// and stores must not assume a Mongo connection exists.
type DBDeps struct {
	ImpactHubMongoClient   *mongo.Client
	ImpactHubMongoDatabase *mongo.Database
}
