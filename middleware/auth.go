package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"noteful/services"
	"noteful/utils"
)

// AuthMiddleware requires a valid bearer token on every request it
// guards. Verification is stateless: signature, issuer and expiry only.
// The authenticated user's id and username are placed in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Unauthorized(c, "Missing or invalid credentials")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := services.ParseToken(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("bearer token rejected")
			utils.TrackError("auth")
			utils.Unauthorized(c, "Missing or invalid credentials")
			return
		}

		c.Set("user_id", claims.Subject)
		c.Set("username", claims.Username)
		c.Next()
	}
}
