// internal/app/features/members/read.go
package members

import (
	"context"
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	memberstore "github.com/crestlinedev/crestline/internal/app/store/members"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /api/members. Members come back ordered by name,
// folded for case.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "list members failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeGet handles GET /admin/api/members/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad member id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Store.GetByID(ctx, oid)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, m)
	case memberstore.ErrNotFound:
		apierrors.NotFound(w, "member not found")
	case memberstore.ErrMalformedRecord:
		apierrors.BadRequest(w, "member record is malformed")
	default:
		h.ErrLog.Internal(w, r, "get member failed", err)
	}
}
