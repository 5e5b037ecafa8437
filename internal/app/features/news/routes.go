// internal/app/features/news/routes.go
package news

import (
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes serves the published-only endpoints the marketing site
// uses. Mounted under /api/news.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePublishedList)
	r.Get("/{slug}", h.ServeBySlug)
	return r
}

// AdminRoutes serves the CMS endpoints, drafts included. Reads and writes
// need a signed-in editor; deletes are admin-only. Mounted under
// /admin/api/news.
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeAdminList)
		pr.Get("/{id}", h.ServeGet)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
