// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateSubCompany creates a test sub-company with the given name.
func (f *Fixtures) CreateSubCompany(ctx context.Context, name string) models.SubCompany {
	f.t.Helper()

	now := time.Now().UTC()
	sc := models.SubCompany{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Email:       "info@example.com",
		Phone:       "+1 555 0100",
		Description: "Test sub-company",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("sub_companies").InsertOne(ctx, sc); err != nil {
		f.t.Fatalf("failed to create test sub-company: %v", err)
	}
	return sc
}

// CreateGallery creates a test gallery item with the given type and images.
func (f *Fixtures) CreateGallery(ctx context.Context, name, galleryType string, images []models.GalleryImage) models.GalleryItem {
	f.t.Helper()

	if images == nil {
		images = []models.GalleryImage{}
	}
	now := time.Now().UTC()
	g := models.GalleryItem{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Type:      galleryType,
		Images:    images,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("galleries").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test gallery item: %v", err)
	}
	return g
}

// CreateNewsArticle creates a test article with the given slug and status.
// Published articles get a PublishedAt stamp.
func (f *Fixtures) CreateNewsArticle(ctx context.Context, slug, status string) models.NewsArticle {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.NewsArticle{
		ID:        primitive.NewObjectID(),
		Title:     "Article " + slug,
		Slug:      slug,
		Author:    "Test Author",
		Content:   "<p>Test content</p>",
		Keywords:  []string{"test"},
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == models.NewsPublished {
		a.PublishedAt = &now
	}

	if _, err := f.db.Collection("news").InsertOne(ctx, a); err != nil {
		f.t.Fatalf("failed to create test news article: %v", err)
	}
	return a
}

// CreateMember creates a test organization member.
func (f *Fixtures) CreateMember(ctx context.Context, name string) models.OrganizationMember {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.OrganizationMember{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Description: "Test member",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("organizations").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test member: %v", err)
	}
	return m
}

// CreateDivision creates a test division under the given sub-company.
func (f *Fixtures) CreateDivision(ctx context.Context, name string, subCompanyID primitive.ObjectID) models.Division {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Division{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		Description:  "Test division",
		SubCompanyID: subCompanyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("divisions").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test division: %v", err)
	}
	return d
}

// CreateBenefit creates a test benefit under the given sub-company.
func (f *Fixtures) CreateBenefit(ctx context.Context, name string, subCompanyID primitive.ObjectID) models.Benefit {
	f.t.Helper()

	now := time.Now().UTC()
	b := models.Benefit{
		ID:           primitive.NewObjectID(),
		Name:         name,
		NameCI:       text.Fold(name),
		Description:  "Test benefit",
		SubCompanyID: subCompanyID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("benefits").InsertOne(ctx, b); err != nil {
		f.t.Fatalf("failed to create test benefit: %v", err)
	}
	return b
}

// CreateCMSUser creates a test CMS user with the given email and role.
func (f *Fixtures) CreateCMSUser(ctx context.Context, email, role string) models.CMSUser {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.CMSUser{
		ID:        primitive.NewObjectID(),
		Name:      "Test User",
		NameCI:    text.Fold("Test User"),
		Email:     email,
		EmailCI:   text.Fold(email),
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test cms user: %v", err)
	}
	return u
}
