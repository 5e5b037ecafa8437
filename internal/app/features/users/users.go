// internal/app/features/users/users.go
package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	userstore "github.com/crestlinedev/crestline/internal/app/store/users"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeList handles GET /admin/api/users, ordered by name.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Store.List(ctx)
	if err != nil {
		h.ErrLog.Internal(w, r, "list users failed", err)
		return
	}
	apierrors.JSON(w, http.StatusOK, list)
}

// ServeGet handles GET /admin/api/users/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Store.GetByID(ctx, oid)
	switch err {
	case nil:
		apierrors.JSON(w, http.StatusOK, u)
	case userstore.ErrNotFound:
		apierrors.NotFound(w, "user not found")
	case userstore.ErrMalformedRecord:
		apierrors.BadRequest(w, "user record is malformed")
	default:
		h.ErrLog.Internal(w, r, "get user failed", err)
	}
}

type createRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HandleCreate handles POST /admin/api/users. Adding an email here is
// what lets that Google account sign in.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequest(w, "invalid JSON body")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		apierrors.BadRequest(w, "email is required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		apierrors.BadRequest(w, "email must be a valid address")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.CMSUser{
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Role:  req.Role,
	})
	switch err {
	case nil:
		h.Log.Info("cms user added",
			zap.String("id", created.ID.Hex()),
			zap.String("email", created.Email),
			zap.String("role", created.Role))
		apierrors.JSON(w, http.StatusCreated, created)
	case userstore.ErrDuplicateEmail:
		apierrors.Conflict(w, "a user with this email already exists")
	case userstore.ErrInvalidRole:
		apierrors.BadRequest(w, "role must be admin or editor")
	default:
		h.ErrLog.Internal(w, r, "create user failed", err)
	}
}

type updateRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// HandleUpdate handles PUT /admin/api/users/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad user id")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequest(w, "invalid JSON body")
		return
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			apierrors.BadRequest(w, "email must be a valid address")
			return
		}
		req.Email = &email
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, oid, userstore.Patch{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	switch err {
	case nil:
		updated, err := h.Store.GetByID(ctx, oid)
		if err != nil {
			h.ErrLog.Internal(w, r, "reload user failed", err)
			return
		}
		apierrors.JSON(w, http.StatusOK, updated)
	case userstore.ErrNotFound:
		apierrors.NotFound(w, "user not found")
	case userstore.ErrDuplicateEmail:
		apierrors.Conflict(w, "a user with this email already exists")
	case userstore.ErrInvalidRole:
		apierrors.BadRequest(w, "role must be admin or editor")
	default:
		h.ErrLog.Internal(w, r, "update user failed", err)
	}
}

// HandleDelete handles DELETE /admin/api/users/{id}. Removing a user
// revokes their access at the next sign-in; live sessions expire on
// their own.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad user id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Store.Delete(ctx, oid); err {
	case nil:
		h.Log.Info("cms user removed", zap.String("id", oid.Hex()))
		w.WriteHeader(http.StatusNoContent)
	case userstore.ErrNotFound:
		apierrors.NotFound(w, "user not found")
	default:
		h.ErrLog.Internal(w, r, "delete user failed", err)
	}
}
