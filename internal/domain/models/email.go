// internal/domain/models/email.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmailMessage is a contact-form submission. Append-only: there is no update
// operation, only create, list, and delete.
type EmailMessage struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	From      string             `bson:"from" json:"from"`
	To        string             `bson:"to" json:"to"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
