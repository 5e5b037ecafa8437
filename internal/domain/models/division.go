// internal/domain/models/division.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Division is a business unit scoped to a sub-company.
type Division struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"-"`
	Description  string             `bson:"description" json:"description"`
	Icon         string             `bson:"icon" json:"icon"`
	SubCompanyID primitive.ObjectID `bson:"sub_company_id" json:"sub_company_id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// Benefit is a selling point scoped to a sub-company. Shape mirrors Division;
// they live in separate collections because the site renders them in
// different sections.
type Benefit struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Name         string             `bson:"name" json:"name"`
	NameCI       string             `bson:"name_ci" json:"-"`
	Description  string             `bson:"description" json:"description"`
	Icon         string             `bson:"icon" json:"icon"`
	SubCompanyID primitive.ObjectID `bson:"sub_company_id" json:"sub_company_id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
