// internal/app/features/pages/routes.go
package pages

import (
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes serves the read-only endpoint the marketing site uses.
// Mounted under /api/pages.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{slug}", h.ServeBySlug)
	return r
}

// AdminRoutes serves the CMS endpoints. Reads and writes need a signed-in
// editor; deletes are admin-only. Mounted under /admin/api/pages.
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/{slug}", h.ServeBySlug)
		pr.Put("/{slug}", h.HandleUpsert)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))
		pr.Delete("/{slug}", h.HandleDelete)
	})

	return r
}
