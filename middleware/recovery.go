package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"noteful/utils"
)

// RecoveryMiddleware guarantees every panicking request still ends in a
// JSON 500 body; the panic value is logged server-side and never reaches
// the caller.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("panic", r).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("recovered from panic")
				utils.TrackError("panic")
				utils.InternalError(c)
			}
		}()
		c.Next()
	}
}
