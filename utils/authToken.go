package utils

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/o1egl/paseto"
)

// DefaultTokenExpiry is the access token lifetime used when no expiry is
// configured, in minutes.
const DefaultTokenExpiry = 30 * time.Minute

// ErrTokenExpired is returned when a token's expiry claim has passed.
var ErrTokenExpired = errors.New("token expired")

// TokenClaims struct represents the data in the token (Subject, Expiry).
type TokenClaims struct {
	Subject string    `json:"sub"`
	Expiry  time.Time `json:"exp"`
}

// GenerateAccessToken generates a PASETO token carrying the subject and an
// expiry set ttl from now.
func GenerateAccessToken(symmetricKey []byte, subject string, ttl time.Duration) (string, error) {
	claims := TokenClaims{
		Subject: subject,
		Expiry:  time.Now().Add(ttl),
	}

	token, err := paseto.NewV2().Encrypt(symmetricKey, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken validates the given token string and checks for expiry.
func ValidateToken(symmetricKey []byte, tokenString string) (*TokenClaims, error) {
	claims, err := parseToken(symmetricKey, tokenString)
	if err != nil {
		log.Printf("Token parsing failed: %v", err)
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !time.Now().Before(claims.Expiry) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// parseToken decrypts the token and extracts claims from it.
func parseToken(symmetricKey []byte, tokenString string) (*TokenClaims, error) {
	var claims TokenClaims
	err := paseto.NewV2().Decrypt(tokenString, symmetricKey, &claims, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}
	return &claims, nil
}
