// internal/app/store/galleries/gallerystore.go
package gallerystore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/crestlinedev/crestline/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrNotFound        = errors.New("gallery item not found")
	ErrInvalidType     = errors.New("gallery type must be 'Home' or 'gallery'")
	ErrMalformedRecord = errors.New("gallery document is missing required fields")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("galleries")}
}

// Create inserts a new GalleryItem. Images defaults to an empty slice so the
// stored document always carries the field.
func (s *Store) Create(ctx context.Context, g models.GalleryItem) (models.GalleryItem, error) {
	if !models.IsValidGalleryType(g.Type) {
		return models.GalleryItem{}, ErrInvalidType
	}
	now := time.Now().UTC()
	g.ID = primitive.NewObjectID()
	if g.Images == nil {
		g.Images = []models.GalleryImage{}
	}
	g.CreatedAt = now
	g.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.GalleryItem{}, err
	}
	return g, nil
}

// GetByID returns the item with the given id. A document missing its name
// yields ErrMalformedRecord along with whatever decoded, so DeleteWithMedia
// can still release the media a corrupted document owns.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.GalleryItem, error) {
	var g models.GalleryItem
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g)
	if err == mongo.ErrNoDocuments {
		return models.GalleryItem{}, ErrNotFound
	}
	if err != nil {
		return models.GalleryItem{}, err
	}
	if g.Name == "" {
		return g, ErrMalformedRecord
	}
	return g, nil
}

// List returns all gallery items, newest first.
func (s *Store) List(ctx context.Context) ([]models.GalleryItem, error) {
	return s.find(ctx, bson.M{})
}

// ListByType returns gallery items with the given placement type, newest
// first. Filter and order are one request to the store.
func (s *Store) ListByType(ctx context.Context, galleryType string) ([]models.GalleryItem, error) {
	if !models.IsValidGalleryType(galleryType) {
		return nil, ErrInvalidType
	}
	return s.find(ctx, bson.M{"type": galleryType})
}

func (s *Store) find(ctx context.Context, filter bson.M) ([]models.GalleryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	items := []models.GalleryItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Patch carries the fields of a partial update. A non-nil Images replaces the
// whole ordered sequence.
type Patch struct {
	Name   *string
	Type   *string
	Images *[]models.GalleryImage
}

// Update applies the patch in a single $set and restamps UpdatedAt.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Type != nil {
		if !models.IsValidGalleryType(*p.Type) {
			return ErrInvalidType
		}
		set["type"] = *p.Type
	}
	if p.Images != nil {
		set["images"] = *p.Images
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

// Delete removes the document only. Callers owning media must use
// DeleteWithMedia so the blobs are released first.
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

// MediaCleaner releases one stored media URL. Implementations must be
// best-effort: an object that is already gone is a success.
type MediaCleaner interface {
	DeleteFile(ctx context.Context, url string) error
}

// Cleanup reports the outcome of the media phase of a composite delete.
// Failures are observable to the caller but never fatal.
type Cleanup struct {
	Attempted int      `json:"attempted"`
	Failed    []string `json:"failed,omitempty"`
}

// DeleteWithMedia removes a gallery item and the blobs it owns: read the
// item, release every owned URL concurrently, join all attempts, then delete
// the document. Media first, document second, so a crash between the phases
// leaves at most orphaned blobs, never a document claiming missing media.
// A missing item is a no-op success.
func (s *Store) DeleteWithMedia(ctx context.Context, id primitive.ObjectID, cleaner MediaCleaner) (Cleanup, error) {
	item, err := s.GetByID(ctx, id)
	if err == ErrNotFound {
		return Cleanup{}, nil
	}
	if err != nil && err != ErrMalformedRecord {
		return Cleanup{}, err
	}

	cleanup := Cleanup{Attempted: len(item.Images)}
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, img := range item.Images {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			if err := cleaner.DeleteFile(ctx, url); err != nil {
				mu.Lock()
				cleanup.Failed = append(cleanup.Failed, url)
				mu.Unlock()
			}
		}(img.URL)
	}
	wg.Wait()

	if err := s.Delete(ctx, id); err != nil && err != ErrNotFound {
		return cleanup, err
	}
	return cleanup, nil
}
