// internal/app/features/subcompanies/handler.go
package subcompanies

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	subcompanystore "github.com/crestlinedev/crestline/internal/app/store/subcompanies"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for sub-companies.
type Handler struct {
	Store  *subcompanystore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *subcompanystore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
