// internal/app/store/benefits/benefitstore.go
package benefitstore

import (
	"context"
	"errors"
	"time"

	"github.com/crestlinedev/crestline/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("benefit not found")
	ErrMalformedRecord = errors.New("benefit document is missing required fields")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("benefits")}
}

func (s *Store) Create(ctx context.Context, b models.Benefit) (models.Benefit, error) {
	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.NameCI = text.Fold(b.Name)
	b.CreatedAt = now
	b.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.Benefit{}, err
	}
	return b, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Benefit, error) {
	var b models.Benefit
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err == mongo.ErrNoDocuments {
		return models.Benefit{}, ErrNotFound
	}
	if err != nil {
		return models.Benefit{}, err
	}
	if b.Name == "" {
		return models.Benefit{}, ErrMalformedRecord
	}
	return b, nil
}

// List returns all benefits ordered by name ascending.
func (s *Store) List(ctx context.Context) ([]models.Benefit, error) {
	return s.find(ctx, bson.M{})
}

// ListBySubCompany returns the benefits owned by one sub-company, ordered by
// name ascending.
func (s *Store) ListBySubCompany(ctx context.Context, subCompanyID primitive.ObjectID) ([]models.Benefit, error) {
	return s.find(ctx, bson.M{"sub_company_id": subCompanyID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Benefit, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	benefits := []models.Benefit{}
	if err := cur.All(ctx, &benefits); err != nil {
		return nil, err
	}
	return benefits, nil
}

type Patch struct {
	Name         *string
	Description  *string
	Icon         *string
	SubCompanyID *primitive.ObjectID
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if p.Name != nil {
		set["name"] = *p.Name
		set["name_ci"] = text.Fold(*p.Name)
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Icon != nil {
		set["icon"] = *p.Icon
	}
	if p.SubCompanyID != nil {
		set["sub_company_id"] = *p.SubCompanyID
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

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
