package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"noteful/dto"
	"noteful/repository"
	"noteful/utils"
)

// FoldersHandler implements folder CRUD. Folder deletes also clear the
// folder reference on any note pointing at the deleted folder, so the
// handler holds the note store as well.
type FoldersHandler struct {
	Folders FolderStore
	Notes   NoteStore
}

func NewFoldersHandler(folders FolderStore, notes NoteStore) *FoldersHandler {
	return &FoldersHandler{Folders: folders, Notes: notes}
}

func (h *FoldersHandler) List(c *gin.Context) {
	folders, err := h.Folders.ListFolders(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, folders)
}

func (h *FoldersHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	folder, err := h.Folders.GetFolder(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, folder)
}

func (h *FoldersHandler) Create(c *gin.Context) {
	var req dto.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.BadRequest(c, "Missing `name` in request body")
		return
	}

	folder, err := h.Folders.CreateFolder(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.BadRequest(c, "The folder name already exists")
			return
		}
		storeError(c, err)
		return
	}

	utils.Created(c, "/api/folders/"+folder.ID.Hex(), folder)
}

func (h *FoldersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.FolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.BadRequest(c, "Missing `name` in request body")
		return
	}

	folder, err := h.Folders.UpdateFolder(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.BadRequest(c, "The folder name already exists")
			return
		}
		storeError(c, err)
		return
	}

	utils.Success(c, folder)
}

// Delete removes the folder and clears the folder reference on
// dependent notes. The two store operations are issued concurrently and
// both must finish before the response; there is no transaction around
// them, so a failure surfaces as a 500 without rolling back the other
// operation.
func (h *FoldersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return h.Folders.DeleteFolder(ctx, id)
	})
	g.Go(func() error {
		return h.Notes.ClearFolderRefs(ctx, id)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("folder_id", id.Hex()).Msg("folder delete cascade failed")
		utils.TrackError("db")
		utils.InternalError(c)
		return
	}

	utils.NoContent(c)
}
