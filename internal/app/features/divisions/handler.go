// internal/app/features/divisions/handler.go
package divisions

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	divisionstore "github.com/crestlinedev/crestline/internal/app/store/divisions"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for divisions.
type Handler struct {
	Store  *divisionstore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *divisionstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
