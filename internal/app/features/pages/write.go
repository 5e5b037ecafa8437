// internal/app/features/pages/write.go
package pages

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	pagestore "github.com/crestlinedev/crestline/internal/app/store/pages"
	"github.com/crestlinedev/crestline/internal/app/system/htmlsanitize"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type upsertRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleUpsert handles PUT /admin/api/pages/{slug}. Writing a slug that
// does not exist creates it; the first write wins the created_at stamp.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		apierrors.BadRequest(w, "slug is required")
		return
	}

	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequest(w, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := h.Store.Upsert(ctx, models.Page{
		Slug:    slug,
		Title:   strings.TrimSpace(req.Title),
		Content: htmlsanitize.Sanitize(req.Content),
	})
	if err != nil {
		h.ErrLog.Internal(w, r, "upsert page failed", err, zap.String("slug", slug))
		return
	}

	p, err := h.Store.GetBySlug(ctx, slug)
	if err != nil {
		h.ErrLog.Internal(w, r, "reload page failed", err, zap.String("slug", slug))
		return
	}
	h.Log.Info("page saved", zap.String("slug", slug))
	apierrors.JSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /admin/api/pages/{slug}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		apierrors.BadRequest(w, "slug is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Store.Delete(ctx, slug); err {
	case nil:
		h.Log.Info("page deleted", zap.String("slug", slug))
		w.WriteHeader(http.StatusNoContent)
	case pagestore.ErrNotFound:
		apierrors.NotFound(w, "page not found")
	default:
		h.ErrLog.Internal(w, r, "delete page failed", err)
	}
}
