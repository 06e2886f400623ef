package repository

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"noteful/model"
	"noteful/utils"
)

type FolderRepo struct {
	MongoCollection *mongo.Collection
}

func GetFolderRepo(client *mongo.Client) *FolderRepo {
	return &FolderRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("folders"),
	}
}

// ListFolders returns all folders sorted ascending by name.
func (r *FolderRepo) ListFolders(ctx context.Context) ([]model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	folders := []model.Folder{}
	if err := cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// GetFolder returns a single folder or ErrNotFound.
func (r *FolderRepo) GetFolder(ctx context.Context, id primitive.ObjectID) (*model.Folder, error) {
	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	var folder model.Folder
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &folder, nil
}

// GetFoldersByIDs returns the folders matching the given ids, for
// denormalizing note responses.
func (r *FolderRepo) GetFoldersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Folder, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	timer := utils.TrackDBOperation("find", "folders")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var folders []model.Folder
	if err := cursor.All(ctx, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// CreateFolder inserts a new folder. A name collision on the unique
// index surfaces as ErrDuplicate.
func (r *FolderRepo) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("insert", "folders")
	defer timer.ObserveDuration()

	now := time.Now().UTC()
	folder := &model.Folder{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.MongoCollection.InsertOne(ctx, folder); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return folder, nil
}

// UpdateFolder renames a folder and returns the post-update document.
func (r *FolderRepo) UpdateFolder(ctx context.Context, id primitive.ObjectID, name string) (*model.Folder, error) {
	timer := utils.TrackDBOperation("update", "folders")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"name":      name,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var folder model.Folder
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&folder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes a folder. Deleting a nonexistent id is not an
// error; delete is idempotent.
func (r *FolderRepo) DeleteFolder(ctx context.Context, id primitive.ObjectID) error {
	timer := utils.TrackDBOperation("delete", "folders")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
