// internal/app/features/news/handler.go
package news

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	newsstore "github.com/crestlinedev/crestline/internal/app/store/news"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for news articles. The public
// surface only ever sees published articles; the admin surface sees drafts
// too.
type Handler struct {
	Store  *newsstore.Store
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(store *newsstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Store:  store,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
