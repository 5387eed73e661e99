package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jand6793/chat-website-backend/internal/common"
)

// maxPasswordBytes is bcrypt's input limit; GenerateFromPassword rejects
// anything longer. Request validation bounds passwords at 72 characters,
// but multi-byte characters can still push the byte length over.
const maxPasswordBytes = 72

// HashPassword derives a bcrypt hash from the plaintext password.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", common.ErrValidation, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
func VerifyPassword(password string, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
