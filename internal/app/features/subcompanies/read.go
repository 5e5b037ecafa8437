// internal/app/features/subcompanies/read.go
package subcompanies

import (
	"context"
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	subcompanystore "github.com/crestlinedev/crestline/internal/app/store/subcompanies"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /api/subcompanies and the admin equivalent.
// Sub-companies come back ordered by name.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "list sub-companies failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeGet handles GET /api/subcompanies/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad sub-company id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	sc, err := h.Store.GetByID(ctx, oid)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, sc)
	case subcompanystore.ErrNotFound:
		apierrors.NotFound(w, "sub-company not found")
	case subcompanystore.ErrMalformedRecord:
		apierrors.BadRequest(w, "sub-company record is malformed")
	default:
		h.ErrLog.Internal(w, r, "get sub-company failed", err)
	}
}
