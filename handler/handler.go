package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"noteful/repository"
	"noteful/utils"
)

// parseID reads the :id path parameter. A syntactically invalid
// identifier ends the request with a 400 naming the field.
func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "The `id` is not valid")
		return primitive.NilObjectID, false
	}
	return id, true
}

// storeError is the fallthrough mapping for store failures the handler
// cannot classify: unresolved ids become empty 404s, everything else a
// generic logged 500. Validation and duplicate-key cases are handled at
// the call sites, where the message names the field or resource.
func storeError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		utils.NotFound(c)
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("store operation failed")
	utils.TrackError("db")
	utils.InternalError(c)
}
