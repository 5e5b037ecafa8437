// Package media sits between HTTP upload handlers and object storage.
// It validates incoming files, mints storage keys, and owns the mapping
// between storage keys and the public URLs stored in documents.
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/crestlinedev/crestline/internal/app/system/blob"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Upload size caps by media class.
const (
	MaxImageBytes = 5 << 20  // 5 MiB
	MaxVideoBytes = 50 << 20 // 50 MiB
)

var (
	// ErrUnsupportedType indicates the file is neither an image nor a video.
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrTooLarge indicates the file exceeds the cap for its media class.
	ErrTooLarge = errors.New("media file too large")
	// ErrUploadFailed wraps storage failures during upload.
	ErrUploadFailed = errors.New("media upload failed")
)

// Service uploads and deletes media files and converts between storage
// keys and public URLs. BaseURL is the storage account endpoint without
// a trailing slash; Container is the blob container holding all media.
type Service struct {
	Blob      blob.Store
	BaseURL   string
	Container string
	Log       *zap.Logger
}

func New(store blob.Store, baseURL, container string, log *zap.Logger) *Service {
	return &Service{
		Blob:      store,
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Container: container,
		Log:       log,
	}
}

// Upload validates the file against the size and type caps, stores it
// under a fresh key beneath logicalPath, and returns the public URL.
// Validation happens before any storage I/O.
func (s *Service) Upload(ctx context.Context, logicalPath, filename, contentType string, size int64, r io.Reader) (string, error) {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		if size > MaxImageBytes {
			return "", fmt.Errorf("%w: image is %d bytes, limit %d", ErrTooLarge, size, MaxImageBytes)
		}
	case strings.HasPrefix(contentType, "video/"):
		if size > MaxVideoBytes {
			return "", fmt.Errorf("%w: video is %d bytes, limit %d", ErrTooLarge, size, MaxVideoBytes)
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	key := s.newKey(logicalPath, filename, contentType)
	if err := s.Blob.Upload(ctx, key, r, contentType); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	s.Log.Info("media uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int64("size", size),
	)
	return s.KeyToURL(key), nil
}

// newKey builds "{logicalPath}/{epochMillis}-{suffix}.{ext}". The
// timestamp plus random suffix keeps keys unique without coordination.
func (s *Service) newKey(logicalPath, filename, contentType string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, fileExt(filename, contentType))
	logicalPath = strings.Trim(logicalPath, "/")
	if logicalPath == "" {
		return name
	}
	return logicalPath + "/" + name
}

// fileExt prefers the original filename's extension and falls back to
// one derived from the content type.
func fileExt(filename, contentType string) string {
	if ext := path.Ext(filename); ext != "" {
		return strings.ToLower(ext)
	}
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}

// KeyToURL returns the public URL for a storage key. Each path segment
// is percent-encoded so keys with spaces or reserved characters yield
// valid URLs that URLToKey can decode back to the same key.
func (s *Service) KeyToURL(key string) string {
	segs := strings.Split(key, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	return s.BaseURL + "/" + s.Container + "/" + strings.Join(segs, "/")
}

// URLToKey extracts the storage key from a public URL, dropping any
// query string and percent-decoding the path. The second return value
// is false when the URL does not point at this service's container,
// which callers treat as not-ours rather than an error.
func (s *Service) URLToKey(rawURL string) (string, bool) {
	rawURL, _, _ = strings.Cut(rawURL, "?")
	prefix := s.BaseURL + "/" + s.Container + "/"
	if !strings.HasPrefix(rawURL, prefix) {
		return "", false
	}
	escaped := strings.TrimPrefix(rawURL, prefix)
	if escaped == "" {
		return "", false
	}
	key, err := url.PathUnescape(escaped)
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}

// DeleteFile removes the object a public URL points at. Empty URLs and
// URLs outside this service's container are no-ops, and deleting an
// already-deleted object succeeds, so callers can retry freely.
func (s *Service) DeleteFile(ctx context.Context, rawURL string) error {
	if rawURL == "" {
		return nil
	}
	key, ok := s.URLToKey(rawURL)
	if !ok {
		s.Log.Debug("skipping delete of foreign media url", zap.String("url", rawURL))
		return nil
	}

	err := s.Blob.Delete(ctx, key)
	if errors.Is(err, blob.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete media %s: %w", key, err)
	}
	return nil
}
