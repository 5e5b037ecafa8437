// internal/app/store/subcompanies/subcompanystore.go
package subcompanystore

import (
	"context"
	"errors"
	"time"

	"github.com/crestlinedev/crestline/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
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
	ErrNotFound        = errors.New("sub-company not found")
	ErrDuplicateName   = errors.New("a sub-company with this name already exists")
	ErrMalformedRecord = errors.New("sub-company document is missing required fields")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sub_companies")}
}

// Create inserts a new SubCompany. The ID, folded name, and timestamps are
// assigned here; omitted optional fields stay empty strings, never unset.
func (s *Store) Create(ctx context.Context, sc models.SubCompany) (models.SubCompany, error) {
	now := time.Now().UTC()
	sc.ID = primitive.NewObjectID()
	sc.NameCI = text.Fold(sc.Name)
	sc.CreatedAt = now
	sc.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, sc)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.SubCompany{}, ErrDuplicateName
		}
		return models.SubCompany{}, err
	}
	return sc, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.SubCompany, error) {
	var sc models.SubCompany
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sc)
	if err == mongo.ErrNoDocuments {
		return models.SubCompany{}, ErrNotFound
	}
	if err != nil {
		return models.SubCompany{}, err
	}
	if sc.Name == "" {
		return models.SubCompany{}, ErrMalformedRecord
	}
	return sc, nil
}

// List returns all sub-companies ordered by name ascending.
// An empty collection yields an empty slice, not an error.
func (s *Store) List(ctx context.Context) ([]models.SubCompany, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	scs := []models.SubCompany{}
	if err := cur.All(ctx, &scs); err != nil {
		return nil, err
	}
	return scs, nil
}

// Patch carries the fields of a partial update. Nil fields are left exactly
// as stored; non-nil fields are written, including explicit clears to "".
type Patch struct {
	Name        *string
	Email       *string
	Phone       *string
	Address     *string
	Description *string
	Logo        *string
	Instagram   *string
	Facebook    *string
	Twitter     *string
	LinkedIn    *string
	YouTube     *string
}

// Update applies the patch in a single $set and restamps UpdatedAt.
// Returns ErrNotFound if no document has the given id.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if p.Name != nil {
		set["name"] = *p.Name
		set["name_ci"] = text.Fold(*p.Name)
	}
	if p.Email != nil {
		set["email"] = *p.Email
	}
	if p.Phone != nil {
		set["phone"] = *p.Phone
	}
	if p.Address != nil {
		set["address"] = *p.Address
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	if p.Logo != nil {
		set["logo"] = *p.Logo
	}
	if p.Instagram != nil {
		set["instagram"] = *p.Instagram
	}
	if p.Facebook != nil {
		set["facebook"] = *p.Facebook
	}
	if p.Twitter != nil {
		set["twitter"] = *p.Twitter
	}
	if p.LinkedIn != nil {
		set["linkedin"] = *p.LinkedIn
	}
	if p.YouTube != nil {
		set["youtube"] = *p.YouTube
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateName
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a sub-company. Returns ErrNotFound when nothing was deleted.
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
