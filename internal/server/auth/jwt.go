// Package auth holds the credential primitives: bcrypt password hashing
// and JWT access tokens.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jand6793/chat-website-backend/internal/common"
)

// Claims carries the standard registered claims; the subject is the
// username.
type Claims struct {
	jwt.RegisteredClaims
}

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// GenerateToken signs an access token for username using the named HMAC
// algorithm, valid for validityDuration.
func GenerateToken(username string, secretKey []byte, algorithm string, validityDuration time.Duration) (string, error) {
	method, ok := signingMethods[algorithm]
	if !ok {
		return "", fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	token := jwt.NewWithClaims(method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUsernameFromToken verifies tokenString and returns its subject. Every
// failure mode, expiry, bad signature, missing subject, comes back as
// common.ErrInvalidCredentials so callers cannot tell them apart.
func GetUsernameFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidCredentials
	}

	return claims.Subject, nil
}
