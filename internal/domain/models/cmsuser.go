// internal/domain/models/cmsuser.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CMS user roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// CMSUser is a staff account allowed into the admin panel. There is no
// credential here: authentication is delegated to Google sign-in, and the
// email acts as the allow-list key.
type CMSUser struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	NameCI    string             `bson:"name_ci" json:"-"`
	Email     string             `bson:"email" json:"email"`
	EmailCI   string             `bson:"email_ci" json:"-"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// IsValidRole reports whether r is a recognized CMS role.
func IsValidRole(r string) bool {
	return r == RoleAdmin || r == RoleEditor
}
