// internal/app/bootstrap/conndb.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/crestlinedev/crestline/internal/app/system/blob"
	"github.com/crestlinedev/crestline/internal/app/system/media"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and, when configured, the
// Azure blob client the media store runs on.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
	}

	deps := DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}
	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	if appCfg.BlobConnectionString != "" {
		store, err := blob.New(appCfg.BlobConnectionString, appCfg.BlobContainer, logger)
		if err != nil {
			return DBDeps{}, fmt.Errorf("connect to blob storage: %w", err)
		}
		deps.Blob = store
		deps.Media = media.New(store, appCfg.MediaBaseURL, appCfg.BlobContainer, logger)
		logger.Info("connected to blob storage",
			zap.String("container", appCfg.BlobContainer))
	} else {
		logger.Warn("blob storage not configured; media uploads disabled")
	}

	return deps, nil
}
