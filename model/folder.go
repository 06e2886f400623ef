package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Folder groups notes. Name carries a unique index.
type Folder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
