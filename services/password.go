package services

import (
	"golang.org/x/crypto/bcrypt"

	"noteful/utils"
)

// HashPassword hashes a raw password with bcrypt. The cost factor is a
// configuration concern (BCRYPT_COST); the transform is one-way and the
// raw password is never stored.
func HashPassword(password string) (string, error) {
	cost := utils.GetEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the raw password matches the stored
// bcrypt digest.
func CheckPassword(storedHash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
