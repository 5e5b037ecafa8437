// internal/app/features/uploads/handler.go
package uploads

import (
	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	"github.com/crestlinedev/crestline/internal/app/system/media"
	"go.uber.org/zap"
)

// Handler puts files into the media store and takes them back out. Every
// other feature only ever sees the public URLs this one hands out.
type Handler struct {
	Media  *media.Service
	Log    *zap.Logger
	ErrLog *apierrors.ErrorLogger
}

func NewHandler(svc *media.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Media:  svc,
		Log:    logger,
		ErrLog: apierrors.NewErrorLogger(logger),
	}
}
