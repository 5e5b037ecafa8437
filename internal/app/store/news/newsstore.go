// internal/app/store/news/newsstore.go
package newsstore

import (
	"context"
	"errors"
	"time"

	"github.com/crestlinedev/crestline/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("news article not found")
	ErrDuplicateSlug   = errors.New("a news article with this slug already exists")
	ErrInvalidStatus   = errors.New("news status must be 'draft' or 'published'")
	ErrMalformedRecord = errors.New("news document is missing required fields")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("news")}
}

// Create inserts a new article. Status defaults to draft; PublishedAt is
// stamped only when the article is created already published.
func (s *Store) Create(ctx context.Context, a models.NewsArticle) (models.NewsArticle, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	if a.Status == "" {
		a.Status = models.NewsDraft
	}
	if !models.IsValidNewsStatus(a.Status) {
		return models.NewsArticle{}, ErrInvalidStatus
	}
	if a.Keywords == nil {
		a.Keywords = []string{}
	}
	if a.Status == models.NewsPublished && a.PublishedAt == nil {
		a.PublishedAt = &now
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, a)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.NewsArticle{}, ErrDuplicateSlug
		}
		return models.NewsArticle{}, err
	}
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.NewsArticle, error) {
	return s.getOne(ctx, bson.M{"_id": id})
}

// GetBySlug loads one article by its public slug.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.NewsArticle, error) {
	return s.getOne(ctx, bson.M{"slug": slug})
}

func (s *Store) getOne(ctx context.Context, filter bson.M) (models.NewsArticle, error) {
	var a models.NewsArticle
	err := s.c.FindOne(ctx, filter).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.NewsArticle{}, ErrNotFound
	}
	if err != nil {
		return models.NewsArticle{}, err
	}
	if a.Title == "" || a.Slug == "" {
		return models.NewsArticle{}, ErrMalformedRecord
	}
	return a, nil
}

// List returns every article, drafts included, newest created first.
// This is the admin view.
func (s *Store) List(ctx context.Context) ([]models.NewsArticle, error) {
	return s.find(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

// ListPublished returns published articles ordered by publication time
// descending. Filter and order are one request to the store.
func (s *Store) ListPublished(ctx context.Context) ([]models.NewsArticle, error) {
	return s.find(ctx,
		bson.M{"status": models.NewsPublished},
		bson.D{{Key: "published_at", Value: -1}})
}

func (s *Store) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.NewsArticle, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	articles := []models.NewsArticle{}
	if err := cur.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Patch carries the fields of a partial update. Setting Status to published
// stamps PublishedAt if the article has never been published; reverting to
// draft leaves PublishedAt in place so republication keeps history.
type Patch struct {
	Title     *string
	Slug      *string
	Author    *string
	Content   *string
	Thumbnail *string
	Keywords  *[]string
	Status    *string
}

// Update applies the patch in a single $set and restamps UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if p.Title != nil {
		set["title"] = *p.Title
	}
	if p.Slug != nil {
		set["slug"] = *p.Slug
	}
	if p.Author != nil {
		set["author"] = *p.Author
	}
	if p.Content != nil {
		set["content"] = *p.Content
	}
	if p.Thumbnail != nil {
		set["thumbnail"] = *p.Thumbnail
	}
	if p.Keywords != nil {
		set["keywords"] = *p.Keywords
	}
	if p.Status != nil {
		if !models.IsValidNewsStatus(*p.Status) {
			return ErrInvalidStatus
		}
		set["status"] = *p.Status
	}

	update := bson.M{"$set": set}
	if p.Status != nil && *p.Status == models.NewsPublished {
		// First publication stamps published_at; later publishes keep it.
		cur, err := s.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if cur.PublishedAt == nil {
			set["published_at"] = time.Now().UTC()
		}
	}

	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateSlug
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an article. Returns ErrNotFound when nothing was deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
