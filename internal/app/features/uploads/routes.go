// internal/app/features/uploads/routes.go
package uploads

import (
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// AdminRoutes serves the media endpoints. Uploads need a signed-in
// editor; deletes are admin-only. There is no public surface; the site
// reads media straight from blob storage URLs. Mounted under
// /admin/api/uploads.
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/", h.HandleUpload)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))
		pr.Delete("/", h.HandleDelete)
	})

	return r
}
