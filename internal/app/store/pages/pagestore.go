// internal/app/store/pages/pagestore.go
package pagestore

import (
	"context"
	"errors"
	"time"

	"github.com/crestlinedev/crestline/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists editable page content, keyed by slug. Pages are written
// with Upsert so the admin editor never has to care whether a slug has
// been saved before.
type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("page not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("pages")}
}

// Upsert creates or replaces the page content for p.Slug. The document
// _id and created_at are preserved across updates.
func (s *Store) Upsert(ctx context.Context, p models.Page) error {
	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"title":      p.Title,
			"content":    p.Content,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"slug":       p.Slug,
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"slug": p.Slug}, update, opts)
	return err
}

func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Page, error) {
	var p models.Page
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.Page{}, ErrNotFound
	}
	if err != nil {
		return models.Page{}, err
	}
	return p, nil
}

// GetAll returns every page, sorted by slug.
func (s *Store) GetAll(ctx context.Context) ([]models.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "slug", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	pages := []models.Page{}
	if err := cur.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (s *Store) Exists(ctx context.Context, slug string) (bool, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"slug": slug}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Delete(ctx context.Context, slug string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"slug": slug})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
