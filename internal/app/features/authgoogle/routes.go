// internal/app/features/authgoogle/routes.go
package authgoogle

import (
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves the OAuth flow plus the session introspection endpoint.
// Mounted under /auth.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/google", h.ServeLogin)
	r.Get("/google/callback", h.ServeCallback)
	r.Get("/me", h.ServeMe)
	return r
}

// ServeMe handles GET /auth/me. The admin UI calls this on load to know
// who, if anyone, is signed in.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		apierrors.JSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	apierrors.JSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user": map[string]string{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"role":  u.Role,
		},
	})
}
