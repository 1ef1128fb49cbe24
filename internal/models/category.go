package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertySchema describes one filterable property a category offers and the
// values its products may carry.
type PropertySchema struct {
	Name   string   `bson:"name" json:"name"`
	Values []string `bson:"values" json:"values"`
}

type Category struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name       string              `bson:"name" json:"name"`
	Parent     *primitive.ObjectID `bson:"parent,omitempty" json:"parent,omitempty"`
	Properties []PropertySchema    `bson:"properties" json:"properties"`
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
}
