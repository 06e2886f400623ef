package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"noteful/dto"
	"noteful/model"
	"noteful/repository"
	"noteful/services"
	"noteful/utils"
)

// UsersHandler implements sign-up. User validation failures are
// field-level 422s carrying the offending field's location; a duplicate
// username is a 400 like the other unique-constraint violations.
type UsersHandler struct {
	Users UserStore
}

func NewUsersHandler(users UserStore) *UsersHandler {
	return &UsersHandler{Users: users}
}

func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if !validateUserFields(c, &req) {
		return
	}

	hash, err := services.HashPassword(*req.Password)
	if err != nil {
		log.Error().Err(err).Msg("password hashing failed")
		utils.InternalError(c)
		return
	}

	user := &model.User{
		Username: *req.Username,
		Password: hash,
		Fullname: strings.TrimSpace(req.Fullname),
	}

	if err := h.Users.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.BadRequest(c, "The username already exists")
			return
		}
		storeError(c, err)
		return
	}

	utils.Created(c, "/api/users/"+user.ID.Hex(), user)
}

// validateUserFields enforces the sign-up contract: username and
// password present, no surrounding whitespace, username at least 1
// character, password 8 to 72 characters. The first failing check wins.
func validateUserFields(c *gin.Context, req *dto.CreateUserRequest) bool {
	required := []struct {
		value    *string
		location string
	}{
		{req.Username, "username"},
		{req.Password, "password"},
	}
	for _, field := range required {
		if field.value == nil {
			utils.UnprocessableEntity(c, "Missing field", field.location)
			return false
		}
	}

	for _, field := range required {
		if *field.value != strings.TrimSpace(*field.value) {
			utils.UnprocessableEntity(c, "Cannot start or end with whitespace", field.location)
			return false
		}
	}

	if len(*req.Username) < 1 {
		utils.UnprocessableEntity(c, "Must be at least 1 characters long", "username")
		return false
	}
	if len(*req.Password) < 8 {
		utils.UnprocessableEntity(c, "Must be at least 8 characters long", "password")
		return false
	}
	if len(*req.Password) > 72 {
		utils.UnprocessableEntity(c, "Must be at most 72 characters long", "password")
		return false
	}

	return true
}
