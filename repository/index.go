package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the unique indexes backing the uniqueness
// invariants: one username per user, one name per folder, one name per
// tag. Duplicate inserts then fail with a duplicate-key error that the
// handlers translate to a 400.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	unique := func(field, name string) mongo.IndexModel {
		return mongo.IndexModel{
			Keys:    bson.D{{Key: field, Value: 1}},
			Options: options.Index().SetName(name).SetUnique(true),
		}
	}

	for collection, index := range map[string]mongo.IndexModel{
		"users":   unique("username", "unique_username"),
		"folders": unique("name", "unique_folder_name"),
		"tags":    unique("name", "unique_tag_name"),
	} {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, index); err != nil {
			return fmt.Errorf("creating index on %s: %w", collection, err)
		}
	}

	// Notes are listed by last update and filtered by folder and tag.
	noteIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "updatedAt", Value: -1}},
			Options: options.Index().SetName("notes_updated"),
		},
		{
			Keys:    bson.D{{Key: "folderId", Value: 1}},
			Options: options.Index().SetName("notes_folder"),
		},
		{
			Keys:    bson.D{{Key: "tags", Value: 1}},
			Options: options.Index().SetName("notes_tags"),
		},
	}
	if _, err := db.Collection("notes").Indexes().CreateMany(ctx, noteIndexes); err != nil {
		return fmt.Errorf("creating indexes on notes: %w", err)
	}

	return nil
}
