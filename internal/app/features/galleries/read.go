// internal/app/features/galleries/read.go
package galleries

import (
	"context"
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	gallerystore "github.com/crestlinedev/crestline/internal/app/store/galleries"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /api/gallery. The optional ?type= query narrows
// the result to one placement; without it every item comes back, newest
// first either way.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		items []models.GalleryItem
		err   error
	)
	if galleryType := r.URL.Query().Get("type"); galleryType == "" {
		items, err = h.Store.List(ctx)
	} else {
		items, err = h.Store.ListByType(ctx, galleryType)
	}
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, items)
	case gallerystore.ErrInvalidType:
		apierrors.BadRequest(w, "unknown gallery type")
	default:
		h.ErrLog.Internal(w, r, "list gallery items failed", err)
	}
}

// ServeGet handles GET /admin/api/gallery/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad gallery item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Store.GetByID(ctx, oid)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, item)
	case gallerystore.ErrNotFound:
		apierrors.NotFound(w, "gallery item not found")
	case gallerystore.ErrMalformedRecord:
		apierrors.BadRequest(w, "gallery record is malformed")
	default:
		h.ErrLog.Internal(w, r, "get gallery item failed", err)
	}
}
