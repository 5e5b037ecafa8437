// internal/domain/models/gallery.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gallery item placement types.
const (
	GalleryTypeHome    = "Home"
	GalleryTypeGallery = "gallery"
)

// Media types for gallery images.
const (
	MediaPhoto        = "photo"
	MediaVideo        = "video"
	MediaVideoMobile  = "video_mobile"
	MediaVideoDesktop = "video_desktop"
)

// GalleryImage is one media entry owned by a gallery item. URL always points
// into the media store; the item's deletion releases the blob.
type GalleryImage struct {
	MediaType string `bson:"media_type" json:"media_type"`
	URL       string `bson:"url" json:"url"`
}

// GalleryItem groups an ordered set of media shown on the home page or the
// gallery page, depending on Type.
type GalleryItem struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"`
	Images    []GalleryImage     `bson:"images" json:"images"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsValidGalleryType reports whether t is a recognized placement type.
func IsValidGalleryType(t string) bool {
	return t == GalleryTypeHome || t == GalleryTypeGallery
}

// IsValidMediaType reports whether t is a recognized media type.
func IsValidMediaType(t string) bool {
	switch t {
	case MediaPhoto, MediaVideo, MediaVideoMobile, MediaVideoDesktop:
		return true
	}
	return false
}
