package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// JWTSecret signs and verifies bearer tokens.
	JWTSecret string
	// JWTExpiry is how long an issued token stays valid.
	JWTExpiry time.Duration
)

// InitJWT loads the signing secret and token lifetime from the
// environment. The secret is mandatory; expiry defaults to 7 days.
func InitJWT() {
	JWTSecret = os.Getenv("JWT_SECRET")
	if JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}

	JWTExpiry = GetEnvAsDuration("JWT_EXPIRY", 7*24*time.Hour)
}
