// internal/app/features/contact/submit.go
package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	apierrors "github.com/crestlinedev/crestline/internal/app/features/errors"
	"github.com/crestlinedev/crestline/internal/app/system/htmlsanitize"
	"github.com/crestlinedev/crestline/internal/app/system/timeouts"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"go.uber.org/zap"
)

// maxMessageLen bounds a single submission so the inbox cannot be
// flooded with megabyte bodies.
const maxMessageLen = 10000

type submitRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Message string `json:"message"`
}

// HandleSubmit handles POST /api/contact. This is the one unauthenticated
// write in the API, so the body is validated and stripped to plain text
// before it is stored.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.BadRequest(w, "invalid JSON body")
		return
	}

	from := strings.TrimSpace(req.From)
	if from == "" {
		apierrors.BadRequest(w, "from is required")
		return
	}
	if _, err := mail.ParseAddress(from); err != nil {
		apierrors.BadRequest(w, "from must be a valid email address")
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		apierrors.BadRequest(w, "message is required")
		return
	}
	if len(message) > maxMessageLen {
		apierrors.BadRequest(w, "message is too long")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, models.EmailMessage{
		From:    from,
		To:      strings.TrimSpace(req.To),
		Message: htmlsanitize.Sanitize(message),
	})
	if err != nil {
		h.ErrLog.Internal(w, r, "store contact submission failed", err)
		return
	}
	h.Log.Info("contact submission received", zap.String("id", created.ID.Hex()))
	apierrors.JSON(w, http.StatusCreated, created)
}
