// internal/app/features/benefits/handler.go
package benefits

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	benefitstore "github.com/crestlinedev/crestline/internal/app/store/benefits"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for benefits.
type Handler struct {
	Store  *benefitstore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *benefitstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
