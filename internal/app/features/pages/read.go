// internal/app/features/pages/read.go
package pages

import (
	"context"
	"net/http"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	pagestore "github.com/crestlinedev/crestline/internal/app/store/pages"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// ServeList handles GET /admin/api/pages, ordered by slug.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.GetAll(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "list pages failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeBySlug handles GET /api/pages/{slug}.
func (h *Handler) ServeBySlug(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		apierrors.BadRequest(w, "slug is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetBySlug(ctx, slug)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, p)
	case pagestore.ErrNotFound:
		apierrors.NotFound(w, "page not found")
	default:
		h.ErrLog.Internal(w, r, "get page failed", err)
	}
}
