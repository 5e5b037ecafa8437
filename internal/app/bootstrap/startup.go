// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	userstore "github.com/crestlinedev/crestline/internal/app/store/users"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.ConfigureFromEnv()

	if appCfg.SeedAdminEmail != "" {
		if err := ensureSeedAdmin(ctx, deps, appCfg.SeedAdminEmail, logger); err != nil {
			return err
		}
	}
	return nil
}

// ensureSeedAdmin guarantees the configured email can sign in as an
// admin. A fresh deployment has an empty allow-list, and without this
// nobody could reach the user management endpoints to fix that. An
// existing user keeps their record but is promoted to admin.
func ensureSeedAdmin(ctx context.Context, deps DBDeps, email string, logger *zap.Logger) error {
	store := userstore.New(deps.MongoDatabase)

	existing, err := store.GetByEmail(ctx, email)
	switch err {
	case nil:
		if existing.Role == models.RoleAdmin {
			return nil
		}
		role := models.RoleAdmin
		if err := store.Update(ctx, existing.ID, userstore.Patch{Role: &role}); err != nil {
			return err
		}
		logger.Info("seed admin promoted", zap.String("email", email))
		return nil
	case userstore.ErrNotFound:
		if _, err := store.Create(ctx, models.CMSUser{
			Email: email,
			Role:  models.RoleAdmin,
		}); err != nil {
			return err
		}
		logger.Info("seed admin created", zap.String("email", email))
		return nil
	default:
		return err
	}
}
