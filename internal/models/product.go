package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	Images      []string            `bson:"images" json:"images"`
	Price       float64             `bson:"price" json:"price"`
	Category    *primitive.ObjectID `bson:"category,omitempty" json:"category,omitempty"`
	Properties  PropertyMap         `bson:"properties,omitempty" json:"properties,omitempty"`
	CreatedAt   time.Time           `bson:"createdAt" json:"createdAt"`
}

// CategoryHex returns the category reference as a hex string, or "" when the
// product is uncategorized.
func (p Product) CategoryHex() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Hex()
}
