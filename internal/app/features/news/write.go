// internal/app/features/news/write.go
package news

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	newsstore "github.com/crestlinedev/crestline/internal/app/store/news"
	"github.com/crestlinedev/crestline/internal/app/system/htmlsanitize"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type createRequest struct {
	Title     string   `json:"title"`
	Slug      string   `json:"slug"`
	Author    string   `json:"author"`
	Content   string   `json:"content"`
	Thumbnail string   `json:"thumbnail"`
	Keywords  []string `json:"keywords"`
	Status    string   `json:"status"`
}

// HandleCreate handles POST /admin/api/news. An omitted status means the
// article starts as a draft.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		apierrors.BadRequest(w, "title is required")
		return
	}
	if strings.TrimSpace(req.Slug) == "" {
		apierrors.BadRequest(w, "slug is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.NewsArticle{
		Title:     strings.TrimSpace(req.Title),
		Slug:      strings.TrimSpace(req.Slug),
		Author:    strings.TrimSpace(req.Author),
		Content:   htmlsanitize.Sanitize(req.Content),
		Thumbnail: strings.TrimSpace(req.Thumbnail),
		Keywords:  req.Keywords,
		Status:    req.Status,
	})
	switch err {
	case nil:
		h.Log.Info("news article created",
			zap.String("id", created.ID.Hex()),
			zap.String("slug", created.Slug),
			zap.String("status", created.Status))
		apierrors.JSON(w, http.StatusCreated, created)
	case newsstore.ErrDuplicateSlug:
		apierrors.Conflict(w, "a news article with this slug already exists")
	case newsstore.ErrInvalidStatus:
		apierrors.BadRequest(w, "unknown article status")
	default:
		h.ErrLog.Internal(w, r, "create news article failed", err)
	}
}

type updateRequest struct {
	Title     *string   `json:"title"`
	Slug      *string   `json:"slug"`
	Author    *string   `json:"author"`
	Content   *string   `json:"content"`
	Thumbnail *string   `json:"thumbnail"`
	Keywords  *[]string `json:"keywords"`
	Status    *string   `json:"status"`
}

// HandleUpdate handles PUT /admin/api/news/{id}. Publishing for the first
// time stamps the publication moment; unpublishing keeps it.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad news article id")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequest(w, "invalid JSON body")
		return
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		apierrors.BadRequest(w, "title cannot be empty")
		return
	}
	if req.Slug != nil && strings.TrimSpace(*req.Slug) == "" {
		apierrors.BadRequest(w, "slug cannot be empty")
		return
	}
	if req.Content != nil {
		clean := htmlsanitize.Sanitize(*req.Content)
		req.Content = &clean
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, oid, newsstore.Patch{
		Title:     req.Title,
		Slug:      req.Slug,
		Author:    req.Author,
		Content:   req.Content,
		Thumbnail: req.Thumbnail,
		Keywords:  req.Keywords,
		Status:    req.Status,
	})
	switch err {
	case nil:
		updated, err := h.Store.GetByID(ctx, oid)
		if err != nil {
			h.ErrLog.Internal(w, r, "reload news article failed", err)
			return
		}
		apierrors.JSON(w, http.StatusOK, updated)
	case newsstore.ErrNotFound:
		apierrors.NotFound(w, "news article not found")
	case newsstore.ErrDuplicateSlug:
		apierrors.Conflict(w, "a news article with this slug already exists")
	case newsstore.ErrInvalidStatus:
		apierrors.BadRequest(w, "unknown article status")
	default:
		h.ErrLog.Internal(w, r, "update news article failed", err)
	}
}

// HandleDelete handles DELETE /admin/api/news/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.BadRequest(w, "bad news article id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	switch err := h.Store.Delete(ctx, oid); err {
	case nil:
		h.Log.Info("news article deleted", zap.String("id", oid.Hex()))
		w.WriteHeader(http.StatusNoContent)
	case newsstore.ErrNotFound:
		apierrors.NotFound(w, "news article not found")
	default:
		h.ErrLog.Internal(w, r, "delete news article failed", err)
	}
}
