// internal/app/features/uploads/upload.go
package uploads

import (
	"context"
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	"github.com/crestlinedev/crestline/internal/app/system/media"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Multipart parse ceiling. Anything above the video cap is rejected by
// the media service anyway; this only bounds what is buffered in memory.
const maxMultipartMemory = 10 << 20

// HandleUpload handles POST /admin/api/uploads. The multipart form
// carries the file under "file" and an optional "path" field naming the
// logical folder the media belongs to.
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		apierrors.BadRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		apierrors.BadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	logicalPath := strings.Trim(r.FormValue("path"), "/")
	if logicalPath == "" {
		logicalPath = "uploads"
	}
	contentType := header.Header.Get("Content-Type")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	url, err := h.Media.Upload(ctx, logicalPath, header.Filename, contentType, header.Size, file)
	switch {
	case err == nil:
		h.Log.Info("media uploaded",
			zap.String("filename", header.Filename),
			zap.String("content_type", contentType),
			zap.Int64("size", header.Size))
		apierrors.JSON(w, http.StatusCreated, map[string]string{"url": url})
	case errors.Is(err, media.ErrTooLarge):
		apierrors.Error(w, http.StatusRequestEntityTooLarge, "file exceeds the size limit for its type")
	case errors.Is(err, media.ErrUnsupportedType):
		apierrors.Error(w, http.StatusUnsupportedMediaType, "only image and video uploads are accepted")
	default:
		h.ErrLog.Internal(w, r, "media upload failed", err)
	}
}

// HandleDelete handles DELETE /admin/api/uploads?url=... . Deleting a
// URL that is already gone, or one that never belonged to the media
// store, is a success.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	url := strings.TrimSpace(r.URL.Query().Get("url"))
	if url == "" {
		apierrors.BadRequest(w, "url query parameter is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Media.DeleteFile(ctx, url); err != nil {
		h.ErrLog.Internal(w, r, "media delete failed", err, zap.String("url", url))
		return
	}
	h.Log.Info("media deleted", zap.String("url", url))
	w.WriteHeader(http.StatusNoContent)
}
