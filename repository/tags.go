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

type TagRepo struct {
	MongoCollection *mongo.Collection
}

func GetTagRepo(client *mongo.Client) *TagRepo {
	return &TagRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("tags"),
	}
}

// ListTags returns all tags sorted ascending by name.
func (r *TagRepo) ListTags(ctx context.Context) ([]model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tags := []model.Tag{}
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTag returns a single tag or ErrNotFound.
func (r *TagRepo) GetTag(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	var tag model.Tag
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetTagsByIDs returns the tags matching the given ids, for
// denormalizing note responses.
func (r *TagRepo) GetTagsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	timer := utils.TrackDBOperation("find", "tags")
	defer timer.ObserveDuration()

	cursor, err := r.MongoCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tags []model.Tag
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag inserts a new tag; a name collision surfaces as
// ErrDuplicate.
func (r *TagRepo) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("insert", "tags")
	defer timer.ObserveDuration()

	now := time.Now().UTC()
	tag := &model.Tag{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := r.MongoCollection.InsertOne(ctx, tag); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return tag, nil
}

// UpdateTag renames a tag and returns the post-update document.
func (r *TagRepo) UpdateTag(ctx context.Context, id primitive.ObjectID, name string) (*model.Tag, error) {
	timer := utils.TrackDBOperation("update", "tags")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"name":      name,
		"updatedAt": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tag model.Tag
	err := r.MongoCollection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag; deleting a nonexistent id is not an error.
func (r *TagRepo) DeleteTag(ctx context.Context, id primitive.ObjectID) error {
	timer := utils.TrackDBOperation("delete", "tags")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
