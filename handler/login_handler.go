package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"noteful/dto"
	"noteful/repository"
	"noteful/services"
	"noteful/utils"
)

// LoginHandler verifies credentials and issues the bearer token. The
// 401 body is identical whether the username is unknown or the password
// is wrong; the distinction exists only in the server-side log.
type LoginHandler struct {
	Users UserStore
}

func NewLoginHandler(users UserStore) *LoginHandler {
	return &LoginHandler{Users: users}
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.Users.FindUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Debug().Str("username", req.Username).Msg("login failed: unknown username")
			h.reject(c)
			return
		}
		storeError(c, err)
		return
	}

	if !services.CheckPassword(user.Password, req.Password) {
		log.Debug().Str("username", req.Username).Msg("login failed: wrong password")
		h.reject(c)
		return
	}

	token, err := services.GenerateToken(user.ID.Hex(), user.Username)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		utils.InternalError(c)
		return
	}

	utils.TrackAuthAttempt("success")
	utils.Success(c, dto.LoginResponse{AuthToken: token})
}

func (h *LoginHandler) reject(c *gin.Context) {
	utils.TrackAuthAttempt("failure")
	utils.Unauthorized(c, "Incorrect username or password")
}
