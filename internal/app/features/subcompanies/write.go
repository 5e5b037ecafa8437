// internal/app/features/subcompanies/write.go
package subcompanies

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	subcompanystore "github.com/crestlinedev/crestline/internal/app/store/subcompanies"
	"github.com/crestlinedev/crestline/internal/app/system/htmlsanitize"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Instagram   string `json:"instagram"`
	Facebook    string `json:"facebook"`
	Twitter     string `json:"twitter"`
	LinkedIn    string `json:"linkedin"`
	YouTube     string `json:"youtube"`
}

// HandleCreate handles POST /admin/api/subcompanies.
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

	created, err := h.Store.Create(ctx, models.SubCompany{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		Description: htmlsanitize.Sanitize(req.Description),
		Logo:        strings.TrimSpace(req.Logo),
		Instagram:   strings.TrimSpace(req.Instagram),
		Facebook:    strings.TrimSpace(req.Facebook),
		Twitter:     strings.TrimSpace(req.Twitter),
		LinkedIn:    strings.TrimSpace(req.LinkedIn),
		YouTube:     strings.TrimSpace(req.YouTube),
	})
	switch err {
	case nil:
		h.Log.Info("sub-company created", zap.String("id", created.ID.Hex()), zap.String("name", created.Name))
		apierrors.JSON(w, http.StatusCreated, created)
	case subcompanystore.ErrDuplicateName:
		apierrors.Conflict(w, "a sub-company with this name already exists")
	default:
		h.ErrLog.Internal(w, r, "create sub-company failed", err)
	}
}

type updateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	Logo        *string `json:"logo"`
	Instagram   *string `json:"instagram"`
	Facebook    *string `json:"facebook"`
	Twitter     *string `json:"twitter"`
	LinkedIn    *string `json:"linkedin"`
	YouTube     *string `json:"youtube"`
}

// HandleUpdate handles PUT /admin/api/subcompanies/{id}. Only the fields
// present in the body are written.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad sub-company id")
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

	err = h.Store.Update(ctx, oid, subcompanystore.Patch{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Description: req.Description,
		Logo:        req.Logo,
		Instagram:   req.Instagram,
		Facebook:    req.Facebook,
		Twitter:     req.Twitter,
		LinkedIn:    req.LinkedIn,
		YouTube:     req.YouTube,
	})
	switch err {
	case nil:
		updated, err := h.Store.GetByID(ctx, oid)
		if err != nil {
			h.ErrLog.Internal(w, r, "reload sub-company failed", err)
			return
		}
		apierrors.JSON(w, http.StatusOK, updated)
	case subcompanystore.ErrNotFound:
		apierrors.NotFound(w, "sub-company not found")
	case subcompanystore.ErrDuplicateName:
		apierrors.Conflict(w, "a sub-company with this name already exists")
	default:
		h.ErrLog.Internal(w, r, "update sub-company failed", err)
	}
}

// HandleDelete handles DELETE /admin/api/subcompanies/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad sub-company id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Store.Delete(ctx, oid); err {
	case nil:
		h.Log.Info("sub-company deleted", zap.String("id", oid.Hex()))
		w.WriteHeader(http.StatusNoContent)
	case subcompanystore.ErrNotFound:
		apierrors.NotFound(w, "sub-company not found")
	default:
		h.ErrLog.Internal(w, r, "delete sub-company failed", err)
	}
}
