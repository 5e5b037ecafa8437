// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/crestlinedev/crestline/internal/app/system/blob"
	"github.com/crestlinedev/crestline/internal/app/system/media"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database and storage dependencies for the app. Blob and
// Media stay nil when no storage connection string is configured; the
// upload endpoints are simply not mounted in that case.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Blob  blob.Store
	Media *media.Service
}
