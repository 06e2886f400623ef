package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is the main document. FolderID is optional (zero-or-one folder);
// Tags holds zero-or-many tag ids. Both are references by id only — the
// referenced documents live in their own collections.
type Note struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title     string               `bson:"title" json:"title"`
	Content   string               `bson:"content,omitempty" json:"content,omitempty"`
	FolderID  *primitive.ObjectID  `bson:"folderId,omitempty" json:"folderId,omitempty"`
	Tags      []primitive.ObjectID `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
}
