// internal/app/features/contact/routes.go
package contact

import (
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// PublicRoutes serves the contact form submission endpoint. Mounted
// under /api/contact.
func PublicRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleSubmit)
	return r
}

// AdminRoutes serves the CMS inbox. Reads need a signed-in editor;
// deletes are admin-only. Mounted under /admin/api/emails.
func AdminRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeGet)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
