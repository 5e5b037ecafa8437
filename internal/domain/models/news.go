// internal/domain/models/news.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// News article statuses.
const (
	NewsDraft     = "draft"
	NewsPublished = "published"
)

// NewsArticle is a news post. PublishedAt stays nil until the article is
// first published; the public listing filters on Status and orders by
// PublishedAt descending.
type NewsArticle struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Author      string             `bson:"author" json:"author"`
	Content     string             `bson:"content" json:"content"`
	Thumbnail   string             `bson:"thumbnail" json:"thumbnail"`
	Keywords    []string           `bson:"keywords" json:"keywords"`
	Status      string             `bson:"status" json:"status"`
	PublishedAt *time.Time         `bson:"published_at" json:"published_at,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsValidNewsStatus reports whether s is a recognized article status.
func IsValidNewsStatus(s string) bool {
	return s == NewsDraft || s == NewsPublished
}
