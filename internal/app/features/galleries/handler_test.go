package galleries_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/crestlinedev/crestline/internal/app/features/galleries"
	gallerystore "github.com/crestlinedev/crestline/internal/app/store/galleries"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/crestlinedev/crestline/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type recordingCleaner struct {
	mu      sync.Mutex
	deleted []string
	fail    map[string]error
}

func (c *recordingCleaner) DeleteFile(ctx context.Context, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err, ok := c.fail[url]; ok {
		return err
	}
	c.deleted = append(c.deleted, url)
	return nil
}

func newHandler(t *testing.T) (*galleries.Handler, *gallerystore.Store, *recordingCleaner) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	cleaner := &recordingCleaner{}
	return galleries.NewHandler(store, cleaner, zap.NewNop()), store, cleaner
}

func TestServeList_FilterByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := galleries.NewHandler(gallerystore.New(db), &recordingCleaner{}, zap.NewNop())

	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateGallery(ctx, "Hero", models.GalleryTypeHome, nil)
	fx.CreateGallery(ctx, "Wall", models.GalleryTypeGallery, nil)

	req := httptest.NewRequest("GET", "/api/gallery?type=Home", nil)
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var list []models.GalleryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Hero" {
		t.Fatalf("expected only the Home item, got %+v", list)
	}
}

func TestServeList_BadType(t *testing.T) {
	handler, _, _ := newHandler(t)

	req := httptest.NewRequest("GET", "/api/gallery?type=carousel", nil)
	rec := httptest.NewRecorder()
	handler.ServeList(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleCreate(t *testing.T) {
	handler, _, _ := newHandler(t)

	body := `{"name":"Home Hero","type":"Home","images":[{"media_type":"photo","url":"https://cdn.example.com/media/hero/1.jpg"}]}`
	req := httptest.NewRequest("POST", "/admin/api/gallery", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rec.Code, rec.Body.String())
	}

	var created models.GalleryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected assigned ID in response")
	}
	if len(created.Images) != 1 {
		t.Errorf("expected 1 image, got %d", len(created.Images))
	}
}

func TestHandleCreate_BadType(t *testing.T) {
	handler, _, _ := newHandler(t)

	req := httptest.NewRequest("POST", "/admin/api/gallery",
		strings.NewReader(`{"name":"Home Hero","type":"carousel"}`))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleCreate_BadImage(t *testing.T) {
	handler, _, _ := newHandler(t)

	req := httptest.NewRequest("POST", "/admin/api/gallery",
		strings.NewReader(`{"name":"Home Hero","type":"Home","images":[{"media_type":"gif","url":"https://x/y.gif"}]}`))
	rec := httptest.NewRecorder()
	handler.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleUpdate_ReplacesImages(t *testing.T) {
	handler, store, _ := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.GalleryItem{
		Name: "Gallery Wall",
		Type: models.GalleryTypeGallery,
		Images: []models.GalleryImage{
			{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/a.jpg"},
			{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/b.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	body := `{"images":[{"media_type":"video","url":"https://cdn.example.com/media/c.mp4"}]}`
	req := httptest.NewRequest("PUT", "/admin/api/gallery/"+created.ID.Hex(), strings.NewReader(body))
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var updated models.GalleryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(updated.Images) != 1 || updated.Images[0].URL != "https://cdn.example.com/media/c.mp4" {
		t.Errorf("expected images replaced, got %+v", updated.Images)
	}
	if updated.Name != "Gallery Wall" {
		t.Errorf("expected untouched name, got %q", updated.Name)
	}
}

func TestHandleDelete_ReportsCleanup(t *testing.T) {
	handler, store, cleaner := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.GalleryItem{
		Name: "Gallery Wall",
		Type: models.GalleryTypeGallery,
		Images: []models.GalleryImage{
			{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/a.jpg"},
			{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/b.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/admin/api/gallery/"+created.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", created.ID.Hex())
	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Deleted bool               `json:"deleted"`
		Cleanup gallerystore.Cleanup `json:"cleanup"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Deleted {
		t.Error("expected deleted=true")
	}
	if resp.Cleanup.Attempted != 2 {
		t.Errorf("expected 2 attempted cleanups, got %d", resp.Cleanup.Attempted)
	}
	if len(cleaner.deleted) != 2 {
		t.Errorf("expected 2 blobs released, got %d", len(cleaner.deleted))
	}

	if _, err := store.GetByID(ctx, created.ID); err != gallerystore.ErrNotFound {
		t.Errorf("expected gallery item gone, got %v", err)
	}
}

func TestHandleDelete_MissingItem(t *testing.T) {
	handler, _, cleaner := newHandler(t)

	id := primitive.NewObjectID().Hex()
	req := httptest.NewRequest("DELETE", "/admin/api/gallery/"+id, nil)
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()
	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d for missing item, got %d", http.StatusOK, rec.Code)
	}
	if len(cleaner.deleted) != 0 {
		t.Errorf("expected no cleanup attempts, got %d", len(cleaner.deleted))
	}
}
