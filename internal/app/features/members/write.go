// internal/app/features/members/write.go
package members

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	memberstore "github.com/crestlinedev/crestline/internal/app/store/members"
	"github.com/crestlinedev/crestline/internal/app/system/htmlsanitize"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Photo       string `json:"photo"`
}

// HandleCreate handles POST /admin/api/members.
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.OrganizationMember{
		Name:        strings.TrimSpace(req.Name),
		Description: htmlsanitize.Sanitize(req.Description),
		Photo:       strings.TrimSpace(req.Photo),
	})
	if err != nil {
		h.ErrLog.Internal(w, r, "create member failed", err)
		return
	}
	h.Log.Info("member created", zap.String("id", created.ID.Hex()), zap.String("name", created.Name))
	apierrors.JSON(w, http.StatusCreated, created)
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Photo       *string `json:"photo"`
}

// HandleUpdate handles PUT /admin/api/members/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad member id")
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, oid, memberstore.Patch{
		Name:        req.Name,
		Description: req.Description,
		Photo:       req.Photo,
	})
	switch err {
	case nil:
		updated, err := h.Store.GetByID(ctx, oid)
		if err != nil {
			h.ErrLog.Internal(w, r, "reload member failed", err)
			return
		}
		apierrors.JSON(w, http.StatusOK, updated)
	case memberstore.ErrNotFound:
		apierrors.NotFound(w, "member not found")
	default:
		h.ErrLog.Internal(w, r, "update member failed", err)
	}
}

// HandleDelete handles DELETE /admin/api/members/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad member id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Store.Delete(ctx, oid); err {
	case nil:
		h.Log.Info("member deleted", zap.String("id", oid.Hex()))
		w.WriteHeader(http.StatusNoContent)
	case memberstore.ErrNotFound:
		apierrors.NotFound(w, "member not found")
	default:
		h.ErrLog.Internal(w, r, "delete member failed", err)
	}
}
