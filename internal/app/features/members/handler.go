// internal/app/features/members/handler.go
package members

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	memberstore "github.com/crestlinedev/crestline/internal/app/store/members"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for organization members.
type Handler struct {
	Store  *memberstore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *memberstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
