// internal/app/features/benefits/routes.go
package benefits

import (
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes serves the read-only endpoint the sub-company pages use.
// Mounted under /api/benefits.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}

// AdminRoutes serves the CMS endpoints. Reads and writes need a signed-in
// editor; deletes are admin-only. Mounted under /admin/api/benefits.
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
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
