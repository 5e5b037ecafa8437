// internal/app/store/users/userstore.go
package userstore

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

// Store persists CMS staff accounts. There are no credentials here: sign-in
// is delegated to Google, and membership in this collection is what
// authorizes access.
type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("a user with this email already exists")
	ErrInvalidRole     = errors.New("role must be 'admin' or 'editor'")
	ErrMalformedRecord = errors.New("user document is missing required fields")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

func (s *Store) Create(ctx context.Context, u models.CMSUser) (models.CMSUser, error) {
	if u.Role == "" {
		u.Role = models.RoleEditor
	}
	if !models.IsValidRole(u.Role) {
		return models.CMSUser{}, ErrInvalidRole
	}
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.NameCI = text.Fold(u.Name)
	u.EmailCI = text.Fold(u.Email)
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.CMSUser{}, ErrDuplicateEmail
		}
		return models.CMSUser{}, err
	}
	return u, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.CMSUser, error) {
	return s.getOne(ctx, bson.M{"_id": id})
}

// GetByEmail looks a user up case-insensitively. This is the allow-list
// check the sign-in callback runs.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.CMSUser, error) {
	return s.getOne(ctx, bson.M{"email_ci": text.Fold(email)})
}

func (s *Store) getOne(ctx context.Context, filter bson.M) (models.CMSUser, error) {
	var u models.CMSUser
	err := s.c.FindOne(ctx, filter).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.CMSUser{}, ErrNotFound
	}
	if err != nil {
		return models.CMSUser{}, err
	}
	if u.Email == "" {
		return models.CMSUser{}, ErrMalformedRecord
	}
	return u, nil
}

// List returns all users ordered by name ascending, case-insensitively.
func (s *Store) List(ctx context.Context) ([]models.CMSUser, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.CMSUser{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

type Patch struct {
	Name  *string
	Email *string
	Role  *string
}

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
		set["email_ci"] = text.Fold(*p.Email)
	}
	if p.Role != nil {
		if !models.IsValidRole(*p.Role) {
			return ErrInvalidRole
		}
		set["role"] = *p.Role
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateEmail
		}
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
