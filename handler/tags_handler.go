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

// TagsHandler implements tag CRUD. Tags are many-to-many with notes, so
// a tag delete also pulls the tag id out of every note's tag list.
type TagsHandler struct {
	Tags  TagStore
	Notes NoteStore
}

func NewTagsHandler(tags TagStore, notes NoteStore) *TagsHandler {
	return &TagsHandler{Tags: tags, Notes: notes}
}

func (h *TagsHandler) List(c *gin.Context) {
	tags, err := h.Tags.ListTags(c.Request.Context())
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, tags)
}

func (h *TagsHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tag, err := h.Tags.GetTag(c.Request.Context(), id)
	if err != nil {
		storeError(c, err)
		return
	}
	utils.Success(c, tag)
}

func (h *TagsHandler) Create(c *gin.Context) {
	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.BadRequest(c, "Missing `name` in request body")
		return
	}

	tag, err := h.Tags.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.BadRequest(c, "The tag name already exists")
			return
		}
		storeError(c, err)
		return
	}

	utils.Created(c, "/api/tags/"+tag.ID.Hex(), tag)
}

func (h *TagsHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.BadRequest(c, "Missing `name` in request body")
		return
	}

	tag, err := h.Tags.UpdateTag(c.Request.Context(), id, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.BadRequest(c, "The tag name already exists")
			return
		}
		storeError(c, err)
		return
	}

	utils.Success(c, tag)
}

// Delete removes the tag and pulls its id from every note's tag list,
// concurrently, joining on both before responding. Either failure is a
// 500; no rollback is attempted.
func (h *TagsHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		return h.Tags.DeleteTag(ctx, id)
	})
	g.Go(func() error {
		return h.Notes.PullTagRefs(ctx, id)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("tag_id", id.Hex()).Msg("tag delete cascade failed")
		utils.TrackError("db")
		utils.InternalError(c)
		return
	}

	utils.NoContent(c)
}
