package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims is the payload of a login token: the authenticated user's id encoded
// as a bare JSON string. It carries no registered claims, so the same user
// always produces the same payload segment.
type Claims string

var _ jwt.Claims = Claims("")

// NewClaims returns the claims for userID.
func NewClaims(userID string) Claims {
	return Claims(userID)
}

// UserID returns the id carried by the claims.
func (c Claims) UserID() string {
	return string(c)
}

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return nil, nil }
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c Claims) GetIssuer() (string, error)                   { return "", nil }
func (c Claims) GetSubject() (string, error)                  { return "", nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }
