// internal/app/store/divisions/divisionstore.go
package divisionstore

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
	ErrNotFound        = errors.New("division not found")
	ErrMalformedRecord = errors.New("division document is missing required fields")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("divisions")}
}

func (s *Store) Create(ctx context.Context, d models.Division) (models.Division, error) {
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	d.NameCI = text.Fold(d.Name)
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Division{}, err
	}
	return d, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Division, error) {
	var d models.Division
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if err == mongo.ErrNoDocuments {
		return models.Division{}, ErrNotFound
	}
	if err != nil {
		return models.Division{}, err
	}
	if d.Name == "" {
		return models.Division{}, ErrMalformedRecord
	}
	return d, nil
}

// List returns all divisions ordered by name ascending.
func (s *Store) List(ctx context.Context) ([]models.Division, error) {
	return s.find(ctx, bson.M{})
}

// ListBySubCompany returns the divisions owned by one sub-company, ordered by
// name ascending. Filter and order are one request to the store.
func (s *Store) ListBySubCompany(ctx context.Context, subCompanyID primitive.ObjectID) ([]models.Division, error) {
	return s.find(ctx, bson.M{"sub_company_id": subCompanyID})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.Division, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	divisions := []models.Division{}
	if err := cur.All(ctx, &divisions); err != nil {
		return nil, err
	}
	return divisions, nil
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
