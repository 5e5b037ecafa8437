// internal/app/features/contact/inbox.go
package contact

import (
	"context"
	"net/http"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	emailstore "github.com/crestlinedev/crestline/internal/app/store/emails"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeList handles GET /admin/api/emails, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "list contact submissions failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeGet handles GET /admin/api/emails/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad message id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := h.Store.GetByID(ctx, oid)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, m)
	case emailstore.ErrNotFound:
		apierrors.NotFound(w, "message not found")
	default:
		h.ErrLog.Internal(w, r, "get contact submission failed", err)
	}
}

// HandleDelete handles DELETE /admin/api/emails/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad message id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Store.Delete(ctx, oid); err {
	case nil:
		h.Log.Info("contact submission deleted", zap.String("id", oid.Hex()))
		w.WriteHeader(http.StatusNoContent)
	case emailstore.ErrNotFound:
		apierrors.NotFound(w, "message not found")
	default:
		h.ErrLog.Internal(w, r, "delete contact submission failed", err)
	}
}
