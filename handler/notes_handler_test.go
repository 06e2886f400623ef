package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"noteful/dto"
	"noteful/model"
)

type noteStores struct {
	notes   *fakeNoteStore
	folders *fakeFolderStore
	tags    *fakeTagStore
}

func setupNoteRouter(s noteStores) *gin.Engine {
	h := NewNotesHandler(s.notes, s.folders, s.tags)
	router := gin.New()
	router.GET("/api/notes", h.List)
	router.GET("/api/notes/:id", h.Get)
	router.POST("/api/notes", h.Create)
	router.PUT("/api/notes/:id", h.Update)
	router.DELETE("/api/notes/:id", h.Delete)
	return router
}

func newNoteStores() noteStores {
	return noteStores{
		notes:   newFakeNoteStore(),
		folders: newFakeFolderStore(),
		tags:    newFakeTagStore(),
	}
}

func TestCreateNote(t *testing.T) {
	stores := newNoteStores()
	folder, err := stores.folders.CreateFolder(context.Background(), "Work")
	if err != nil {
		t.Fatalf("seeding folder: %v", err)
	}
	router := setupNoteRouter(stores)

	tests := []struct {
		name         string
		body         string
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "title and content",
			body:         `{"title": "A", "content": "alpha"}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "with folder and tags",
			body:         `{"title": "B", "folderId": "` + folder.ID.Hex() + `", "tags": ["` + primitive.NewObjectID().Hex() + `"]}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "empty folderId treated as absent",
			body:         `{"title": "C", "folderId": ""}`,
			expectedCode: http.StatusCreated,
		},
		{
			name:         "missing title",
			body:         `{"content": "no title"}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Missing `title` in request body",
		},
		{
			name:         "empty title",
			body:         `{"title": ""}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "Missing `title` in request body",
		},
		{
			name:         "malformed folderId",
			body:         `{"title": "D", "folderId": "nope"}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "The `folderId` is not valid",
		},
		{
			name:         "malformed tag id",
			body:         `{"title": "E", "tags": ["bad-id"]}`,
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "The `tags` array contains an invalid `id`",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := len(stores.notes.notes)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			if w.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, w.Code, w.Body.String())
			}

			if tc.expectedCode == http.StatusCreated {
				var note model.Note
				if err := json.Unmarshal(w.Body.Bytes(), &note); err != nil {
					t.Fatalf("parsing response: %v", err)
				}
				if note.ID.IsZero() {
					t.Error("expected a generated id")
				}
				if got := w.Header().Get("Location"); got != "/api/notes/"+note.ID.Hex() {
					t.Errorf("unexpected Location header %q", got)
				}
			} else {
				// A rejected create must not persist anything.
				if len(stores.notes.notes) != before {
					t.Error("rejected create persisted a note")
				}
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("parsing error body: %v", err)
				}
				if body["message"] != tc.expectedMsg {
					t.Errorf("expected message %q, got %q", tc.expectedMsg, body["message"])
				}
			}
		})
	}
}

func TestListNotesFiltersAndPopulates(t *testing.T) {
	stores := newNoteStores()
	ctx := context.Background()

	folder, err := stores.folders.CreateFolder(ctx, "Work")
	if err != nil {
		t.Fatalf("seeding folder: %v", err)
	}
	tag, err := stores.tags.CreateTag(ctx, "urgent")
	if err != nil {
		t.Fatalf("seeding tag: %v", err)
	}

	seed := []*model.Note{
		{Title: "Grocery list", Content: "milk and eggs", FolderID: &folder.ID, Tags: []primitive.ObjectID{tag.ID}},
		{Title: "Meeting notes", Content: "quarterly review"},
		{Title: "Ideas", Content: "buy MILK in bulk"},
	}
	for _, n := range seed {
		if err := stores.notes.CreateNote(ctx, n); err != nil {
			t.Fatalf("seeding note: %v", err)
		}
	}

	router := setupNoteRouter(stores)

	list := func(t *testing.T, query string) []dto.NoteResponse {
		t.Helper()
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes"+query, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var notes []dto.NoteResponse
		if err := json.Unmarshal(w.Body.Bytes(), &notes); err != nil {
			t.Fatalf("parsing response: %v", err)
		}
		return notes
	}

	if notes := list(t, ""); len(notes) != 3 {
		t.Errorf("expected all 3 notes, got %d", len(notes))
	}

	// Case-insensitive match against title or content.
	if notes := list(t, "?searchTerm=milk"); len(notes) != 2 {
		t.Errorf("expected 2 notes matching milk, got %d", len(notes))
	}

	byFolder := list(t, "?folderId="+folder.ID.Hex())
	if len(byFolder) != 1 {
		t.Fatalf("expected 1 note in folder, got %d", len(byFolder))
	}
	if byFolder[0].Folder == nil || byFolder[0].Folder.Name != "Work" {
		t.Errorf("expected populated folder, got %+v", byFolder[0].Folder)
	}
	if len(byFolder[0].Tags) != 1 || byFolder[0].Tags[0].Name != "urgent" {
		t.Errorf("expected populated tags, got %+v", byFolder[0].Tags)
	}

	if notes := list(t, "?tagId="+tag.ID.Hex()); len(notes) != 1 {
		t.Errorf("expected 1 note with tag, got %d", len(notes))
	}

	// Filters compose with AND.
	if notes := list(t, "?searchTerm=quarterly&folderId="+folder.ID.Hex()); len(notes) != 0 {
		t.Errorf("expected no notes for composed filter, got %d", len(notes))
	}

	// A malformed filter id is rejected up front.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes?folderId=oops", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed folderId, got %d", w.Code)
	}
}

func TestUpdateNotePartial(t *testing.T) {
	stores := newNoteStores()
	ctx := context.Background()

	folder, err := stores.folders.CreateFolder(ctx, "Work")
	if err != nil {
		t.Fatalf("seeding folder: %v", err)
	}
	tagID := primitive.NewObjectID()
	note := &model.Note{Title: "Original", Content: "body", FolderID: &folder.ID, Tags: []primitive.ObjectID{tagID}}
	if err := stores.notes.CreateNote(ctx, note); err != nil {
		t.Fatalf("seeding note: %v", err)
	}

	router := setupNoteRouter(stores)

	// Updating only the content leaves title, folder and tags alone.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notes/"+note.ID.Hex(), strings.NewReader(`{"content": "revised"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated model.Note
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if updated.Title != "Original" {
		t.Errorf("title should be unchanged, got %q", updated.Title)
	}
	if updated.Content != "revised" {
		t.Errorf("content should be updated, got %q", updated.Content)
	}
	if updated.FolderID == nil || *updated.FolderID != folder.ID {
		t.Error("folder reference should be unchanged")
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != tagID {
		t.Error("tags should be unchanged")
	}

	// Title may not become empty.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/notes/"+note.ID.Hex(), strings.NewReader(`{"title": ""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty title, got %d", w.Code)
	}

	// Empty folderId clears the reference.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/notes/"+note.ID.Hex(), strings.NewReader(`{"folderId": ""}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	updated = model.Note{}
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if updated.FolderID != nil {
		t.Error("folder reference should be cleared")
	}

	// Unknown id resolves to 404.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/notes/"+primitive.NewObjectID().Hex(), strings.NewReader(`{"content": "x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetNotePopulated(t *testing.T) {
	stores := newNoteStores()
	ctx := context.Background()

	folder, err := stores.folders.CreateFolder(ctx, "Work")
	if err != nil {
		t.Fatalf("seeding folder: %v", err)
	}
	note := &model.Note{Title: "A", FolderID: &folder.ID}
	if err := stores.notes.CreateNote(ctx, note); err != nil {
		t.Fatalf("seeding note: %v", err)
	}

	router := setupNoteRouter(stores)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notes/"+note.ID.Hex(), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.NoteResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("parsing response: %v", err)
	}
	if resp.Folder == nil || resp.Folder.Name != "Work" {
		t.Errorf("expected populated folder, got %+v", resp.Folder)
	}
}

func TestDeleteNote(t *testing.T) {
	stores := newNoteStores()
	note := &model.Note{Title: "gone soon"}
	if err := stores.notes.CreateNote(context.Background(), note); err != nil {
		t.Fatalf("seeding note: %v", err)
	}
	router := setupNoteRouter(stores)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/notes/"+note.ID.Hex(), nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	// Deleting again still succeeds.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/notes/"+note.ID.Hex(), nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected idempotent 204, got %d", w.Code)
	}
}
