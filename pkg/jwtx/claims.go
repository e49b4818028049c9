package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the fixed lifetime of a session credential.
const DefaultSessionTTL = time.Hour

// Claims are the session-token claims. Email is the only custom claim and is
// the join key against user records.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
}

// NewSessionClaims builds claims for email valid from now until now+ttl.
func NewSessionClaims(email string, ttl time.Duration, issuer string, now time.Time) Claims {
	email = NormaliseEmail(email)
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email: email,
	}
}

// NormaliseEmail lower-cases and trims an email so comparisons and lookups
// agree regardless of how the client typed it.
func NormaliseEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
