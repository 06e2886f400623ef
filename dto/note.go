package dto

import (
	"time"

	"noteful/model"
)

// CreateNoteRequest is the body for POST /api/notes. FolderID and Tags
// are raw strings so their identifier format can be validated with a
// field-specific error before any store call.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	FolderID string   `json:"folderId"`
	Tags     []string `json:"tags"`
}

// UpdateNoteRequest is the body for PUT /api/notes/:id. Pointer fields
// distinguish "absent, leave unmodified" from "present, set".
type UpdateNoteRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	FolderID *string   `json:"folderId"`
	Tags     *[]string `json:"tags"`
}

// NoteQuery carries the GET /api/notes filters. The objectid rule is
// registered with the binding engine at startup.
type NoteQuery struct {
	SearchTerm string `form:"searchTerm"`
	FolderID   string `form:"folderId" binding:"omitempty,objectid"`
	TagID      string `form:"tagId" binding:"omitempty,objectid"`
}

// NoteResponse is a note with its folder and tag references replaced by
// the referenced documents, mirroring the stored field names.
type NoteResponse struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content,omitempty"`
	Folder    *model.Folder `json:"folderId,omitempty"`
	Tags      []model.Tag   `json:"tags"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ToNoteResponse denormalizes a note using lookup maps keyed by hex id.
// Dangling references are dropped rather than surfaced as nulls.
func ToNoteResponse(note *model.Note, folders map[string]model.Folder, tags map[string]model.Tag) NoteResponse {
	resp := NoteResponse{
		ID:        note.ID.Hex(),
		Title:     note.Title,
		Content:   note.Content,
		Tags:      []model.Tag{},
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}

	if note.FolderID != nil {
		if folder, ok := folders[note.FolderID.Hex()]; ok {
			resp.Folder = &folder
		}
	}

	for _, tagID := range note.Tags {
		if tag, ok := tags[tagID.Hex()]; ok {
			resp.Tags = append(resp.Tags, tag)
		}
	}

	return resp
}
