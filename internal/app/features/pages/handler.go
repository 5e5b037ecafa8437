// internal/app/features/pages/handler.go
package pages

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	pagestore "github.com/crestlinedev/crestline/internal/app/store/pages"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for per-page content
// overrides, keyed by slug rather than by object id.
type Handler struct {
	Store  *pagestore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *pagestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
