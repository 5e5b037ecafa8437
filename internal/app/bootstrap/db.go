// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/crestlinedev/crestline/internal/app/store/oauthstate"
	"github.com/crestlinedev/crestline/internal/app/system/blob"
	"github.com/crestlinedev/crestline/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema creates the collection indexes and the blob container.
// Every step is idempotent, so restarting the service is safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := indexes.EnsureAll(ctx, deps.MongoDatabase); err != nil {
		return err
	}
	if err := oauthstate.New(deps.MongoDatabase).EnsureIndexes(ctx); err != nil {
		return err
	}
	if appCfg.BlobConnectionString != "" {
		if err := blob.EnsureContainer(ctx, appCfg.BlobConnectionString, appCfg.BlobContainer); err != nil {
			return err
		}
	}
	logger.Info("schema ensured")
	return nil
}
