package repository

import (
	"context"
	"os"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noteful/model"
	"noteful/utils"
)

type NoteRepo struct {
	MongoCollection *mongo.Collection
}

func GetNoteRepo(client *mongo.Client) *NoteRepo {
	return &NoteRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

// NoteFilter narrows ListNotes. All set conditions compose with AND.
type NoteFilter struct {
	SearchTerm string
	FolderID   *primitive.ObjectID
	TagID      *primitive.ObjectID
}

// NoteUpdate describes a partial update. Nil pointer fields are left
// unmodified; ClearFolder removes the folder reference.
type NoteUpdate struct {
	Title       *string
	Content     *string
	FolderID    *primitive.ObjectID
	ClearFolder bool
	Tags        []primitive.ObjectID
	SetTags     bool
}

// ListNotes returns notes matching the filter, sorted descending by last
// update. The search term matches title or content case-insensitively.
func (r *NoteRepo) ListNotes(ctx context.Context, filter NoteFilter) ([]model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	conditions := bson.M{}
	if filter.SearchTerm != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.SearchTerm), Options: "i"}
		conditions["$or"] = []bson.M{
			{"title": re},
			{"content": re},
		}
	}
	if filter.FolderID != nil {
		conditions["folderId"] = *filter.FolderID
	}
	if filter.TagID != nil {
		conditions["tags"] = *filter.TagID
	}

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, conditions, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := []model.Note{}
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote returns a single note or ErrNotFound.
func (r *NoteRepo) GetNote(ctx context.Context, id primitive.ObjectID) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// CreateNote inserts a note, assigning its id and timestamps.
func (r *NoteRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	now := time.Now().UTC()
	note.ID = primitive.NewObjectID()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := r.MongoCollection.InsertOne(ctx, note)
	return err
}

// UpdateNote applies the set fields of a partial update and returns the
// post-update document, or ErrNotFound if the id does not resolve.
func (r *NoteRepo) UpdateNote(ctx context.Context, id primitive.ObjectID, update NoteUpdate) (*model.Note, error) {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	set := bson.M{"updatedAt": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.FolderID != nil {
		set["folderId"] = *update.FolderID
	}
	if update.SetTags {
		set["tags"] = update.Tags
	}

	change := bson.M{"$set": set}
	if update.ClearFolder {
		change["$unset"] = bson.M{"folderId": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var note model.Note
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, change, opts).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes a note; deleting a nonexistent id is not an error.
func (r *NoteRepo) DeleteNote(ctx context.Context, id primitive.ObjectID) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ClearFolderRefs removes the folder reference from every note pointing
// at the given folder. Issued alongside the folder delete so no note is
// left referencing a nonexistent folder.
func (r *NoteRepo) ClearFolderRefs(ctx context.Context, folderID primitive.ObjectID) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"folderId": folderID},
		bson.M{"$unset": bson.M{"folderId": ""}})
	return err
}

// PullTagRefs removes the tag id from every note's tag list. Issued
// alongside the tag delete.
func (r *NoteRepo) PullTagRefs(ctx context.Context, tagID primitive.ObjectID) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"tags": tagID},
		bson.M{"$pull": bson.M{"tags": tagID}})
	return err
}
