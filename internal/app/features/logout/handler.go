// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout handles POST /logout. The session cookie is expired even
// when the stored session fails to decode.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if u, ok := auth.CurrentUser(r); ok {
		h.Log.Info("user signed out", zap.String("user_id", u.ID), zap.String("email", u.Email))
	}
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}
	apierrors.JSON(w, http.StatusOK, map[string]bool{"signed_out": true})
}
