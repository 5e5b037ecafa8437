// internal/app/features/contact/handler.go
package contact

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	emailstore "github.com/crestlinedev/crestline/internal/app/store/emails"
	"go.uber.org/zap"
)

// Handler takes contact-form submissions from the public site and serves
// the stored messages to the CMS inbox.
type Handler struct {
	Store  *emailstore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *emailstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
