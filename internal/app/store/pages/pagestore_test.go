package pagestore_test

import (
	"errors"
	"testing"

	pagestore "github.com/crestlinedev/crestline/internal/app/store/pages"
	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/crestlinedev/crestline/internal/testutil"
)

func TestStore_Upsert_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:    "about",
		Title:   "About Us",
		Content: "<p>About content</p>",
	}

	if err := store.Upsert(ctx, page); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	saved, err := store.GetBySlug(ctx, "about")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}

	if saved.Title != "About Us" {
		t.Errorf("expected title 'About Us', got %q", saved.Title)
	}
	if saved.Content != "<p>About content</p>" {
		t.Errorf("expected content '<p>About content</p>', got %q", saved.Content)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Upsert_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:    "contact",
		Title:   "Contact Us",
		Content: "<p>Original content</p>",
	}
	if err := store.Upsert(ctx, page); err != nil {
		t.Fatalf("Initial Upsert failed: %v", err)
	}

	page.Title = "Updated Contact"
	page.Content = "<p>Updated content</p>"
	if err := store.Upsert(ctx, page); err != nil {
		t.Fatalf("Update Upsert failed: %v", err)
	}

	saved, err := store.GetBySlug(ctx, "contact")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}

	if saved.Title != "Updated Contact" {
		t.Errorf("expected title 'Updated Contact', got %q", saved.Title)
	}
	if saved.Content != "<p>Updated content</p>" {
		t.Errorf("expected updated content, got %q", saved.Content)
	}
}

func TestStore_GetBySlug_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetBySlug(ctx, "non-existent")
	if !errors.Is(err, pagestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_GetAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pages := []models.Page{
		{Slug: "terms", Title: "Terms"},
		{Slug: "about", Title: "About"},
		{Slug: "contact", Title: "Contact"},
	}
	for _, p := range pages {
		if err := store.Upsert(ctx, p); err != nil {
			t.Fatalf("Upsert failed for %s: %v", p.Slug, err)
		}
	}

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}

	if len(all) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(all))
	}
	// Sorted by slug.
	if all[0].Slug != "about" || all[1].Slug != "contact" || all[2].Slug != "terms" {
		t.Errorf("unexpected order: %s, %s, %s", all[0].Slug, all[1].Slug, all[2].Slug)
	}
}

func TestStore_GetAll_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	all, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}

	if len(all) != 0 {
		t.Errorf("expected 0 pages, got %d", len(all))
	}
}

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, models.Page{Slug: "about", Title: "About"}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	exists, err := store.Exists(ctx, "about")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected page to exist")
	}

	exists, err = store.Exists(ctx, "non-existent")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected page to not exist")
	}
}

func TestStore_Upsert_PreservesID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page := models.Page{
		Slug:    "help",
		Title:   "Help",
		Content: "<p>Help content</p>",
	}
	if err := store.Upsert(ctx, page); err != nil {
		t.Fatalf("Initial Upsert failed: %v", err)
	}

	saved1, err := store.GetBySlug(ctx, "help")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	originalID := saved1.ID

	page.Title = "Updated Help"
	if err := store.Upsert(ctx, page); err != nil {
		t.Fatalf("Update Upsert failed: %v", err)
	}

	saved2, err := store.GetBySlug(ctx, "help")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}

	if saved2.ID != originalID {
		t.Errorf("expected ID to be preserved, got %v vs %v", saved2.ID, originalID)
	}
	if !saved2.CreatedAt.Equal(saved1.CreatedAt) {
		t.Errorf("expected CreatedAt to be preserved, got %v vs %v", saved2.CreatedAt, saved1.CreatedAt)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := pagestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Upsert(ctx, models.Page{Slug: "faq", Title: "FAQ"}); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	if err := store.Delete(ctx, "faq"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.GetBySlug(ctx, "faq"); !errors.Is(err, pagestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	if err := store.Delete(ctx, "faq"); !errors.Is(err, pagestore.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
