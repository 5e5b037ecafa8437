// internal/app/features/divisions/read.go
package divisions

import (
	"context"
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	divisionstore "github.com/crestlinedev/crestline/internal/app/store/divisions"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /api/divisions. The optional ?sub_company= query
// narrows the result to one sub-company; either way divisions come back
// ordered by name.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		list []models.Division
		err  error
	)
	if sc := r.URL.Query().Get("sub_company"); sc == "" {
		list, err = h.Store.List(ctx)
	} else {
		oid, perr := primitive.ObjectIDFromHex(sc)
		if perr != nil {
			apierrors.BadRequest(w, "bad sub_company id")
			return
		}
		list, err = h.Store.ListBySubCompany(ctx, oid)
	}
	if err != nil {
		h.ErrLog.Internal(w, r, "list divisions failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeGet handles GET /admin/api/divisions/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad division id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Store.GetByID(ctx, oid)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, d)
	case divisionstore.ErrNotFound:
		apierrors.NotFound(w, "division not found")
	case divisionstore.ErrMalformedRecord:
		apierrors.BadRequest(w, "division record is malformed")
	default:
		h.ErrLog.Internal(w, r, "get division failed", err)
	}
}
