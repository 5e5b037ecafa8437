// internal/app/features/news/read.go
package news

import (
	"context"
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	newsstore "github.com/crestlinedev/crestline/internal/app/store/news"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServePublishedList handles GET /api/news. Drafts never appear here;
// articles come back most recently published first.
func (h *Handler) ServePublishedList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.ListPublished(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "list published news failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeBySlug handles GET /api/news/{slug}. A draft behind a known slug
// is still a 404 to the public.
func (h *Handler) ServeBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	article, err := h.Store.GetBySlug(ctx, chi.URLParam(r, "slug"))
	switch err {
	case nil:
		if article.Status != models.NewsPublished {
			apierrors.NotFound(w, "news article not found")
			return
		}
		apierrors.JSON(w, http.StatusOK, article)
	case newsstore.ErrNotFound:
		apierrors.NotFound(w, "news article not found")
	case newsstore.ErrMalformedRecord:
		apierrors.BadRequest(w, "news record is malformed")
	default:
		h.ErrLog.Internal(w, r, "get news article failed", err)
	}
}

// ServeAdminList handles GET /admin/api/news, drafts included, newest
// created first.
func (h *Handler) ServeAdminList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "list news failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeGet handles GET /admin/api/news/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad news article id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	article, err := h.Store.GetByID(ctx, oid)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, article)
	case newsstore.ErrNotFound:
		apierrors.NotFound(w, "news article not found")
	case newsstore.ErrMalformedRecord:
		apierrors.BadRequest(w, "news record is malformed")
	default:
		h.ErrLog.Internal(w, r, "get news article failed", err)
	}
}
