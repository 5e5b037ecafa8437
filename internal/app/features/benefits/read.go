// internal/app/features/benefits/read.go
package benefits

import (
	"context"
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	benefitstore "github.com/crestlinedev/crestline/internal/app/store/benefits"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeList handles GET /api/benefits. The optional ?sub_company= query
// narrows the result to one sub-company; either way benefits come back
// ordered by name.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var (
		list []models.Benefit
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
		h.ErrLog.Internal(w, r, "list benefits failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeGet handles GET /admin/api/benefits/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad benefit id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Store.GetByID(ctx, oid)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, d)
	case benefitstore.ErrNotFound:
		apierrors.NotFound(w, "benefit not found")
	case benefitstore.ErrMalformedRecord:
		apierrors.BadRequest(w, "benefit record is malformed")
	default:
		h.ErrLog.Internal(w, r, "get benefit failed", err)
	}
}
