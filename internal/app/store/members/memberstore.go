// internal/app/store/members/memberstore.go
package memberstore

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

// Store persists organization members. The collection keeps its historical
// name "organizations".
type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("organization member not found")
	ErrMalformedRecord = errors.New("organization member document is missing required fields")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organizations")}
}

func (s *Store) Create(ctx context.Context, m models.OrganizationMember) (models.OrganizationMember, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.NameCI = text.Fold(m.Name)
	m.CreatedAt = now
	m.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.OrganizationMember{}, err
	}
	return m, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.OrganizationMember, error) {
	var m models.OrganizationMember
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return models.OrganizationMember{}, ErrNotFound
	}
	if err != nil {
		return models.OrganizationMember{}, err
	}
	if m.Name == "" {
		return models.OrganizationMember{}, ErrMalformedRecord
	}
	return m, nil
}

// List returns all members ordered by name ascending.
func (s *Store) List(ctx context.Context) ([]models.OrganizationMember, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	members := []models.OrganizationMember{}
	if err := cur.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

type Patch struct {
	Name        *string
	Description *string
	Photo       *string
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
	if p.Photo != nil {
		set["photo"] = *p.Photo
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
