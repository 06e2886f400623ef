package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"noteful/model"
	"noteful/repository"
)

// The store interfaces are what the handlers actually consume; the
// repository types satisfy them. Tests substitute in-memory fakes.

type FolderStore interface {
	ListFolders(ctx context.Context) ([]model.Folder, error)
	GetFolder(ctx context.Context, id primitive.ObjectID) (*model.Folder, error)
	GetFoldersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Folder, error)
	CreateFolder(ctx context.Context, name string) (*model.Folder, error)
	UpdateFolder(ctx context.Context, id primitive.ObjectID, name string) (*model.Folder, error)
	DeleteFolder(ctx context.Context, id primitive.ObjectID) error
}

type TagStore interface {
	ListTags(ctx context.Context) ([]model.Tag, error)
	GetTag(ctx context.Context, id primitive.ObjectID) (*model.Tag, error)
	GetTagsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tag, error)
	CreateTag(ctx context.Context, name string) (*model.Tag, error)
	UpdateTag(ctx context.Context, id primitive.ObjectID, name string) (*model.Tag, error)
	DeleteTag(ctx context.Context, id primitive.ObjectID) error
}

type NoteStore interface {
	ListNotes(ctx context.Context, filter repository.NoteFilter) ([]model.Note, error)
	GetNote(ctx context.Context, id primitive.ObjectID) (*model.Note, error)
	CreateNote(ctx context.Context, note *model.Note) error
	UpdateNote(ctx context.Context, id primitive.ObjectID, update repository.NoteUpdate) (*model.Note, error)
	DeleteNote(ctx context.Context, id primitive.ObjectID) error
	ClearFolderRefs(ctx context.Context, folderID primitive.ObjectID) error
	PullTagRefs(ctx context.Context, tagID primitive.ObjectID) error
}

type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindUserByUsername(ctx context.Context, username string) (*model.User, error)
}
