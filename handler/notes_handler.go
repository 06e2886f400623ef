package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"noteful/dto"
	"noteful/model"
	"noteful/repository"
	"noteful/utils"
)

// NotesHandler implements note CRUD. List and Get denormalize the
// folder and tag references into the response, so the handler reads
// from all three collections.
type NotesHandler struct {
	Notes   NoteStore
	Folders FolderStore
	Tags    TagStore
}

func NewNotesHandler(notes NoteStore, folders FolderStore, tags TagStore) *NotesHandler {
	return &NotesHandler{Notes: notes, Folders: folders, Tags: tags}
}

// queryFieldNames maps NoteQuery struct fields to their wire names for
// binding-error messages.
var queryFieldNames = map[string]string{
	"FolderID": "folderId",
	"TagID":    "tagId",
}

// List returns notes filtered by searchTerm, folderId and tagId (AND
// composed), sorted by last update descending, with folder and tag
// documents populated.
func (h *NotesHandler) List(c *gin.Context) {
	var query dto.NoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := queryFieldNames[verrs[0].Field()]
			utils.BadRequest(c, fmt.Sprintf("The `%s` is not valid", field))
			return
		}
		utils.BadRequest(c, "Invalid query parameters")
		return
	}

	filter := repository.NoteFilter{SearchTerm: query.SearchTerm}
	if query.FolderID != "" {
		id, _ := primitive.ObjectIDFromHex(query.FolderID)
		filter.FolderID = &id
	}
	if query.TagID != "" {
		id, _ := primitive.ObjectIDFromHex(query.TagID)
		filter.TagID = &id
	}

	notes, err := h.Notes.ListNotes(c.Request.Context(), filter)
	if err != nil {
		storeError(c, err)
		return
	}

	responses, err := h.populate(c.Request.Context(), notes)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, responses)
}

func (h *NotesHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	note, err := h.Notes.GetNote(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}

	responses, err := h.populate(c.Request.Context(), []model.Note{*note})
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, responses[0])
}

// Create validates the title and the format of any folder or tag
// reference; referenced documents are not required to exist. An empty
// folderId is treated as absent.
func (h *NotesHandler) Create(c *gin.Context) {
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if req.Title == "" {
		utils.BadRequest(c, "Missing `title` in request body")
		return
	}

	note := &model.Note{
		Title:   req.Title,
		Content: req.Content,
	}

	if req.FolderID != "" {
		folderID, err := primitive.ObjectIDFromHex(req.FolderID)
		if err != nil {
			utils.BadRequest(c, "The `folderId` is not valid")
			return
		}
		note.FolderID = &folderID
	}

	tags, ok := parseTagIDs(c, req.Tags)
	if !ok {
		return
	}
	note.Tags = tags

	if err := h.Notes.CreateNote(c.Request.Context(), note); err != nil {
		storeError(c, err)
		return
	}

	utils.Created(c, "/api/notes/"+note.ID.Hex(), note)
}

// Update applies only the fields present in the body. The title may not
// become empty; an empty folderId clears the folder reference.
func (h *NotesHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	var update repository.NoteUpdate

	if req.Title != nil {
		if *req.Title == "" {
			utils.BadRequest(c, "Missing `title` in request body")
			return
		}
		update.Title = req.Title
	}
	update.Content = req.Content

	if req.FolderID != nil {
		if *req.FolderID == "" {
			update.ClearFolder = true
		} else {
			folderID, err := primitive.ObjectIDFromHex(*req.FolderID)
			if err != nil {
				utils.BadRequest(c, "The `folderId` is not valid")
				return
			}
			update.FolderID = &folderID
		}
	}

	if req.Tags != nil {
		tags, ok := parseTagIDs(c, *req.Tags)
		if !ok {
			return
		}
		update.Tags = tags
		update.SetTags = true
	}

	note, err := h.Notes.UpdateNote(c.Request.Context(), id, update)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, note)
}

func (h *NotesHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Notes.DeleteNote(c.Request.Context(), id); err != nil {
		storeError(c, err)
		return
	}
	utils.NoContent(c)
}

// parseTagIDs validates each tag reference's identifier format. On
// failure it writes the 400 and reports false.
func parseTagIDs(c *gin.Context, raw []string) ([]primitive.ObjectID, bool) {
	var tags []primitive.ObjectID
	for _, t := range raw {
		tagID, err := primitive.ObjectIDFromHex(t)
		if err != nil {
			utils.BadRequest(c, "The `tags` array contains an invalid `id`")
			return nil, false
		}
		tags = append(tags, tagID)
	}
	return tags, true
}

// populate resolves the folder and tag references of the given notes in
// two batched lookups and builds the denormalized responses.
func (h *NotesHandler) populate(ctx context.Context, notes []model.Note) ([]dto.NoteResponse, error) {
	folderIDs := map[primitive.ObjectID]struct{}{}
	tagIDs := map[primitive.ObjectID]struct{}{}
	for _, note := range notes {
		if note.FolderID != nil {
			folderIDs[*note.FolderID] = struct{}{}
		}
		for _, t := range note.Tags {
			tagIDs[t] = struct{}{}
		}
	}

	folders, err := h.Folders.GetFoldersByIDs(ctx, keys(folderIDs))
	if err != nil {
		return nil, err
	}
	tags, err := h.Tags.GetTagsByIDs(ctx, keys(tagIDs))
	if err != nil {
		return nil, err
	}

	folderMap := map[string]model.Folder{}
	for _, f := range folders {
		folderMap[f.ID.Hex()] = f
	}
	tagMap := map[string]model.Tag{}
	for _, t := range tags {
		tagMap[t.ID.Hex()] = t
	}

	responses := make([]dto.NoteResponse, len(notes))
	for i := range notes {
		responses[i] = dto.ToNoteResponse(&notes[i], folderMap, tagMap)
	}
	return responses, nil
}

func keys(set map[primitive.ObjectID]struct{}) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
