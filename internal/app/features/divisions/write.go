// internal/app/features/divisions/write.go
package divisions

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	divisionstore "github.com/crestlinedev/crestline/internal/app/store/divisions"
	"github.com/crestlinedev/crestline/internal/app/system/htmlsanitize"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	SubCompanyID string `json:"sub_company_id"`
}

// HandleCreate handles POST /admin/api/divisions. Every division belongs
// to a sub-company.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		apierrors.BadRequest(w, "name is required")
		return
	}
	scID, err := primitive.ObjectIDFromHex(req.SubCompanyID)
	if err != nil {
		apierrors.BadRequest(w, "bad sub_company_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.Division{
		Name:         strings.TrimSpace(req.Name),
		Description:  htmlsanitize.Sanitize(req.Description),
		Icon:         strings.TrimSpace(req.Icon),
		SubCompanyID: scID,
	})
	if err != nil {
		h.ErrLog.Internal(w, r, "create division failed", err)
		return
	}
	h.Log.Info("division created", zap.String("id", created.ID.Hex()), zap.String("name", created.Name))
	apierrors.JSON(w, http.StatusCreated, created)
}

type updateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	SubCompanyID *string `json:"sub_company_id"`
}

// HandleUpdate handles PUT /admin/api/divisions/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad division id")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequest(w, "invalid JSON body")
		return
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		apierrors.BadRequest(w, "name cannot be empty")
		return
	}
	if req.Description != nil {
		clean := htmlsanitize.Sanitize(*req.Description)
		req.Description = &clean
	}

	var scID *primitive.ObjectID
	if req.SubCompanyID != nil {
		parsed, err := primitive.ObjectIDFromHex(*req.SubCompanyID)
		if err != nil {
			apierrors.BadRequest(w, "bad sub_company_id")
			return
		}
		scID = &parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, oid, divisionstore.Patch{
		Name:         req.Name,
		Description:  req.Description,
		Icon:         req.Icon,
		SubCompanyID: scID,
	})
	switch err {
	case nil:
		updated, err := h.Store.GetByID(ctx, oid)
		if err != nil {
			h.ErrLog.Internal(w, r, "reload division failed", err)
			return
		}
		apierrors.JSON(w, http.StatusOK, updated)
	case divisionstore.ErrNotFound:
		apierrors.NotFound(w, "division not found")
	default:
		h.ErrLog.Internal(w, r, "update division failed", err)
	}
}

// HandleDelete handles DELETE /admin/api/divisions/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad division id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Store.Delete(ctx, oid); err {
	case nil:
		h.Log.Info("division deleted", zap.String("id", oid.Hex()))
		w.WriteHeader(http.StatusNoContent)
	case divisionstore.ErrNotFound:
		apierrors.NotFound(w, "division not found")
	default:
		h.ErrLog.Internal(w, r, "delete division failed", err)
	}
}
