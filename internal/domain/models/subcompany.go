// internal/domain/models/subcompany.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubCompany is one company under the Crestline group umbrella.
// NameCI is the folded form of Name, always stored, used for ordering.
type SubCompany struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	Address     string             `bson:"address" json:"address"`
	Description string             `bson:"description" json:"description"`
	Logo        string             `bson:"logo" json:"logo"`
	Instagram   string             `bson:"instagram" json:"instagram"`
	Facebook    string             `bson:"facebook" json:"facebook"`
	Twitter     string             `bson:"twitter" json:"twitter"`
	LinkedIn    string             `bson:"linkedin" json:"linkedin"`
	YouTube     string             `bson:"youtube" json:"youtube"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
