package authgoogle_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/crestlinedev/crestline/internal/app/features/authgoogle"
	"github.com/crestlinedev/crestline/internal/app/store/oauthstate"
	userstore "github.com/crestlinedev/crestline/internal/app/store/users"
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"github.com/crestlinedev/crestline/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*authgoogle.Handler, *oauthstate.Store, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "crestline_session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	states := oauthstate.New(db)
	h := authgoogle.NewHandler(sm, states, userstore.New(db),
		"client-id", "client-secret", "https://crestline.com", zap.NewNop())
	return h, states, db
}

func TestServeLogin_RedirectsToGoogle(t *testing.T) {
	h, _, _ := newHandler(t)

	req := httptest.NewRequest("GET", "/auth/google?return=/admin/news", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected status %d, got %d", http.StatusTemporaryRedirect, rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "https://accounts.google.com/") {
		t.Errorf("expected redirect to Google, got %q", loc)
	}
	if !strings.Contains(loc, "state=") {
		t.Errorf("expected state parameter in redirect, got %q", loc)
	}
}

func TestServeLogin_NotConfigured(t *testing.T) {
	db := testutil.SetupTestDB(t)
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "crestline_session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	h := authgoogle.NewHandler(sm, oauthstate.New(db), userstore.New(db),
		"", "", "https://crestline.com", zap.NewNop())

	req := httptest.NewRequest("GET", "/auth/google", nil)
	rec := httptest.NewRecorder()
	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Location"), "error=google_not_configured") {
		t.Errorf("expected configuration error redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestServeCallback_MissingState(t *testing.T) {
	h, _, _ := newHandler(t)

	req := httptest.NewRequest("GET", "/auth/google/callback?code=abc", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Location"), "error=invalid_state") {
		t.Errorf("expected invalid state redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestServeCallback_UnknownState(t *testing.T) {
	h, _, _ := newHandler(t)

	req := httptest.NewRequest("GET", "/auth/google/callback?state=never-issued&code=abc", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Location"), "error=invalid_state") {
		t.Errorf("expected invalid state redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestServeCallback_ProviderDenied(t *testing.T) {
	h, _, _ := newHandler(t)

	req := httptest.NewRequest("GET", "/auth/google/callback?error=access_denied", nil)
	rec := httptest.NewRecorder()
	h.ServeCallback(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Location"), "error=google_denied") {
		t.Errorf("expected denial redirect, got %q", rec.Header().Get("Location"))
	}
}

func TestServeMe(t *testing.T) {
	h, _, _ := newHandler(t)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	rec := httptest.NewRecorder()
	h.ServeMe(rec, req)

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["authenticated"] != false {
		t.Errorf("expected unauthenticated response, got %v", resp)
	}

	req = httptest.NewRequest("GET", "/auth/me", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "1", Name: "Dana", Email: "dana@crestline.com", Role: "admin"})
	rec = httptest.NewRecorder()
	h.ServeMe(rec, req)

	resp = map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["authenticated"] != true {
		t.Errorf("expected authenticated response, got %v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "dana@crestline.com" {
		t.Errorf("unexpected user payload: %v", resp["user"])
	}
}
