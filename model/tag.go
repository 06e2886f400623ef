package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag labels notes; notes and tags are many-to-many. Name carries a
// unique index.
type Tag struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
