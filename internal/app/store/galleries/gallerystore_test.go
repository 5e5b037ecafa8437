package gallerystore_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	gallerystore "github.com/crestlinedev/crestline/internal/app/store/galleries"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/crestlinedev/crestline/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCleaner records deleted URLs and can be told to fail specific ones.
type fakeCleaner struct {
	mu      sync.Mutex
	deleted []string
	fail    map[string]bool
}

func (f *fakeCleaner) DeleteFile(ctx context.Context, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[url] {
		return errors.New("storage unavailable")
	}
	f.deleted = append(f.deleted, url)
	return nil
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.GalleryItem{
		Name: "Riverside Project",
		Type: models.GalleryTypeGallery,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Images == nil || len(created.Images) != 0 {
		t.Errorf("expected empty images slice, got %v", created.Images)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_InvalidType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.GalleryItem{Name: "Bad", Type: "banner"})
	if err != gallerystore.ErrInvalidType {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestStore_ListByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateGallery(ctx, "Home Hero", models.GalleryTypeHome, nil)
	fx.CreateGallery(ctx, "Project A", models.GalleryTypeGallery, nil)
	fx.CreateGallery(ctx, "Project B", models.GalleryTypeGallery, nil)

	items, err := store.ListByType(ctx, models.GalleryTypeGallery)
	if err != nil {
		t.Fatalf("ListByType failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 gallery items, got %d", len(items))
	}
	for _, item := range items {
		if item.Type != models.GalleryTypeGallery {
			t.Errorf("expected only 'gallery' items, got type %q", item.Type)
		}
	}

	home, err := store.ListByType(ctx, models.GalleryTypeHome)
	if err != nil {
		t.Fatalf("ListByType failed: %v", err)
	}
	if len(home) != 1 || home[0].Name != "Home Hero" {
		t.Errorf("expected one 'Home' item named 'Home Hero', got %v", home)
	}
}

func TestStore_ListByType_InvalidType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.ListByType(ctx, "banner"); err != gallerystore.ErrInvalidType {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestStore_List_NewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"oldest", "middle", "newest"} {
		if _, err := store.Create(ctx, models.GalleryItem{Name: name, Type: models.GalleryTypeGallery}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	items, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if !sort.SliceIsSorted(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	}) {
		t.Error("expected items sorted newest first")
	}
}

func TestStore_Update_ReplacesImages(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.GalleryItem{
		Name: "Riverside",
		Type: models.GalleryTypeGallery,
		Images: []models.GalleryImage{
			{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/a.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	images := []models.GalleryImage{
		{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/b.jpg"},
		{MediaType: models.MediaVideo, URL: "https://cdn.example.com/media/c.mp4"},
	}
	if err := store.Update(ctx, created.ID, gallerystore.Patch{Images: &images}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Images) != 2 {
		t.Fatalf("expected 2 images after replace, got %d", len(got.Images))
	}
	// Order within the sequence is preserved.
	if got.Images[0].URL != images[0].URL || got.Images[1].URL != images[1].URL {
		t.Errorf("expected image order preserved, got %v", got.Images)
	}
	if got.Name != "Riverside" {
		t.Errorf("expected untouched name preserved, got %q", got.Name)
	}
}

func TestStore_Update_InvalidType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.GalleryItem{Name: "Riverside", Type: models.GalleryTypeGallery})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	bad := "banner"
	if err := store.Update(ctx, created.ID, gallerystore.Patch{Type: &bad}); err != gallerystore.ErrInvalidType {
		t.Errorf("expected ErrInvalidType, got %v", err)
	}
}

func TestStore_DeleteWithMedia(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	images := []models.GalleryImage{
		{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/1.jpg"},
		{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/2.jpg"},
		{MediaType: models.MediaVideo, URL: "https://cdn.example.com/media/3.mp4"},
	}
	created, err := store.Create(ctx, models.GalleryItem{
		Name:   "Riverside",
		Type:   models.GalleryTypeGallery,
		Images: images,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cleaner := &fakeCleaner{}
	cleanup, err := store.DeleteWithMedia(ctx, created.ID, cleaner)
	if err != nil {
		t.Fatalf("DeleteWithMedia failed: %v", err)
	}

	if cleanup.Attempted != 3 {
		t.Errorf("expected 3 attempted deletes, got %d", cleanup.Attempted)
	}
	if len(cleanup.Failed) != 0 {
		t.Errorf("expected no failures, got %v", cleanup.Failed)
	}
	if len(cleaner.deleted) != 3 {
		t.Errorf("expected 3 media deletes issued, got %d", len(cleaner.deleted))
	}

	if _, err := store.GetByID(ctx, created.ID); err != gallerystore.ErrNotFound {
		t.Errorf("expected document deleted, got %v", err)
	}
}

func TestStore_DeleteWithMedia_PartialFailure(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.GalleryItem{
		Name: "Riverside",
		Type: models.GalleryTypeGallery,
		Images: []models.GalleryImage{
			{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/ok.jpg"},
			{MediaType: models.MediaPhoto, URL: "https://cdn.example.com/media/stuck.jpg"},
		},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	cleaner := &fakeCleaner{fail: map[string]bool{"https://cdn.example.com/media/stuck.jpg": true}}
	cleanup, err := store.DeleteWithMedia(ctx, created.ID, cleaner)
	if err != nil {
		t.Fatalf("DeleteWithMedia failed: %v", err)
	}

	if cleanup.Attempted != 2 {
		t.Errorf("expected 2 attempted deletes, got %d", cleanup.Attempted)
	}
	if len(cleanup.Failed) != 1 || cleanup.Failed[0] != "https://cdn.example.com/media/stuck.jpg" {
		t.Errorf("expected the stuck URL reported, got %v", cleanup.Failed)
	}

	// The document is removed even when media cleanup partially fails.
	if _, err := store.GetByID(ctx, created.ID); err != gallerystore.ErrNotFound {
		t.Errorf("expected document deleted despite failed media, got %v", err)
	}
}

func TestStore_DeleteWithMedia_MissingItem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cleaner := &fakeCleaner{}
	cleanup, err := store.DeleteWithMedia(ctx, primitive.NewObjectID(), cleaner)
	if err != nil {
		t.Fatalf("expected missing item to be a no-op, got %v", err)
	}
	if cleanup.Attempted != 0 {
		t.Errorf("expected 0 attempted deletes, got %d", cleanup.Attempted)
	}
	if len(cleaner.deleted) != 0 {
		t.Errorf("expected no media deletes, got %v", cleaner.deleted)
	}
}

func TestStore_DeleteWithMedia_MalformedDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := gallerystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A corrupted document with no name still owns its media.
	id := primitive.NewObjectID()
	urls := []string{
		"https://crestline.blob.core.windows.net/media/galleries/a.jpg",
		"https://crestline.blob.core.windows.net/media/galleries/b.jpg",
	}
	_, err := db.Collection("galleries").InsertOne(ctx, bson.M{
		"_id":  id,
		"name": "",
		"type": models.GalleryTypeGallery,
		"images": []bson.M{
			{"media_type": models.MediaPhoto, "url": urls[0]},
			{"media_type": models.MediaPhoto, "url": urls[1]},
		},
	})
	if err != nil {
		t.Fatalf("InsertOne failed: %v", err)
	}

	cleaner := &fakeCleaner{}
	cleanup, err := store.DeleteWithMedia(ctx, id, cleaner)
	if err != nil {
		t.Fatalf("DeleteWithMedia failed: %v", err)
	}

	if cleanup.Attempted != 2 {
		t.Errorf("expected 2 attempted deletes, got %d", cleanup.Attempted)
	}
	sort.Strings(cleaner.deleted)
	if len(cleaner.deleted) != 2 || cleaner.deleted[0] != urls[0] || cleaner.deleted[1] != urls[1] {
		t.Errorf("expected both owned URLs released, got %v", cleaner.deleted)
	}

	if _, err := store.GetByID(ctx, id); !errors.Is(err, gallerystore.ErrNotFound) {
		t.Errorf("expected document removed, got %v", err)
	}
}
