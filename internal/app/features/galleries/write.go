// internal/app/features/galleries/write.go
package galleries

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	gallerystore "github.com/crestlinedev/crestline/internal/app/store/galleries"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Name   string               `json:"name"`
	Type   string               `json:"type"`
	Images []models.GalleryImage `json:"images"`
}

func validImages(images []models.GalleryImage) bool {
	for _, img := range images {
		if !models.IsValidMediaType(img.MediaType) || strings.TrimSpace(img.URL) == "" {
			return false
		}
	}
	return true
}

// HandleCreate handles POST /admin/api/gallery. Image URLs are expected
// to come from a prior upload call.
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
	if !validImages(req.Images) {
		apierrors.BadRequest(w, "images must each carry a media type and url")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.GalleryItem{
		Name:   strings.TrimSpace(req.Name),
		Type:   req.Type,
		Images: req.Images,
	})
	switch err {
	case nil:
		h.Log.Info("gallery item created", zap.String("id", created.ID.Hex()), zap.String("type", created.Type))
		apierrors.JSON(w, http.StatusCreated, created)
	case gallerystore.ErrInvalidType:
		apierrors.BadRequest(w, "unknown gallery type")
	default:
		h.ErrLog.Internal(w, r, "create gallery item failed", err)
	}
}

type updateRequest struct {
	Name   *string                `json:"name"`
	Type   *string                `json:"type"`
	Images *[]models.GalleryImage `json:"images"`
}

// HandleUpdate handles PUT /admin/api/gallery/{id}. A non-nil images
// field replaces the whole ordered sequence.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad gallery item id")
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
	if req.Images != nil && !validImages(*req.Images) {
		apierrors.BadRequest(w, "images must each carry a media type and url")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, oid, gallerystore.Patch{
		Name:   req.Name,
		Type:   req.Type,
		Images: req.Images,
	})
	switch err {
	case nil:
		updated, err := h.Store.GetByID(ctx, oid)
		if err != nil {
			h.ErrLog.Internal(w, r, "reload gallery item failed", err)
			return
		}
		apierrors.JSON(w, http.StatusOK, updated)
	case gallerystore.ErrNotFound:
		apierrors.NotFound(w, "gallery item not found")
	case gallerystore.ErrInvalidType:
		apierrors.BadRequest(w, "unknown gallery type")
	default:
		h.ErrLog.Internal(w, r, "update gallery item failed", err)
	}
}

// HandleDelete handles DELETE /admin/api/gallery/{id}. The item's media
// is released first; cleanup failures are reported, not fatal, so the
// response carries the outcome of the media phase.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad gallery item id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	cleanup, err := h.Store.DeleteWithMedia(ctx, oid, h.Media)
	if err != nil {
		h.ErrLog.Internal(w, r, "delete gallery item failed", err)
		return
	}
	if len(cleanup.Failed) > 0 {
		h.Log.Warn("gallery media cleanup incomplete",
			zap.String("id", oid.Hex()),
			zap.Int("attempted", cleanup.Attempted),
			zap.Strings("failed", cleanup.Failed))
	}
	h.Log.Info("gallery item deleted", zap.String("id", oid.Hex()))
	apierrors.JSON(w, http.StatusOK, map[string]any{
		"deleted": true,
		"cleanup": cleanup,
	})
}
