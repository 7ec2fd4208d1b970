package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is a purchasable catalog entry.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
