// internal/app/features/galleries/handler.go
package galleries

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	gallerystore "github.com/crestlinedev/crestline/internal/app/store/galleries"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for gallery items. Media is
// the cleaner used when a delete has to release owned blobs.
type Handler struct {
	Store  *gallerystore.Store
	Media  gallerystore.MediaCleaner
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *gallerystore.Store, media gallerystore.MediaCleaner, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Media:  media,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
