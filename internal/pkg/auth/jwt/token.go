package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// SigningKey is an HMAC-SHA256 key built from the UTF-8 bytes of a secret.
// HMAC accepts keys of any length, the empty one included.
type SigningKey []byte

// NewSigningKey builds the HS256 key for secret.
func NewSigningKey(secret string) (SigningKey, error) {
	if !jwt.SigningMethodHS256.Hash.Available() {
		return nil, fmt.Errorf("token signing key: %w", jwt.ErrHashUnavailable)
	}
	return SigningKey(secret), nil
}

// GenerateToken signs a compact HS256 token (header.payload.signature) whose
// header is {"alg":"HS256"} and whose payload is userID as a JSON string.
func GenerateToken(userID string, key SigningKey) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, NewClaims(userID))
	token.Header = map[string]any{"alg": jwt.SigningMethodHS256.Alg()}

	signed, err := token.SignedString([]byte(key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
