// internal/app/store/emails/emailstore.go
package emailstore

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

// Store persists contact-form messages. The collection is append-only:
// create, list, and delete, no update.
type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("email message not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("emails")}
}

func (s *Store) Create(ctx context.Context, m models.EmailMessage) (models.EmailMessage, error) {
	m.ID = primitive.NewObjectID()
	m.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.EmailMessage{}, err
	}
	return m, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.EmailMessage, error) {
	var m models.EmailMessage
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return models.EmailMessage{}, ErrNotFound
	}
	if err != nil {
		return models.EmailMessage{}, err
	}
	return m, nil
}

// List returns all messages, newest first.
func (s *Store) List(ctx context.Context) ([]models.EmailMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	msgs := []models.EmailMessage{}
	if err := cur.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
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
