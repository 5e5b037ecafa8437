// internal/app/features/users/handler.go
package users

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	userstore "github.com/crestlinedev/crestline/internal/app/store/users"
	"go.uber.org/zap"
)

// Handler manages the CMS allow-list. Sign-in is by Google account; an
// email that is not listed here cannot get past the OAuth callback, so
// this feature is the only place access is granted or revoked.
type Handler struct {
	Store  *userstore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
