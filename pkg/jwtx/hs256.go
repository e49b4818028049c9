package jwtx

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

// MinSecretLength is the shortest configured secret we accept.
const MinSecretLength = 32

const hkdfInfo = "bistro/session/hs256"

// DeriveKey stretches the configured secret into a 32-byte HMAC key with
// HKDF-SHA256. The raw secret never touches the MAC directly.
func DeriveKey(secret string) ([]byte, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, MinSecretLength, len(secret))
	}

	key := make([]byte, 32)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("jwtx: derive key: %w", err)
	}
	return key, nil
}

// HS256 signs and verifies session tokens with a single symmetric key. It
// holds no mutable state and is safe for concurrent use.
type HS256 struct {
	key    []byte
	issuer string
	now    func() time.Time
}

// NewHS256 builds a signer/verifier from a derived key (see DeriveKey).
// An empty issuer disables the iss check.
func NewHS256(key []byte, issuer string) (*HS256, error) {
	if len(key) < 32 {
		return nil, ErrWeakSecret
	}
	return &HS256{key: key, issuer: issuer, now: time.Now}, nil
}

// WithClock returns a copy of h that reads the time from now. Tests use it to
// check expiry without sleeping.
func (h *HS256) WithClock(now func() time.Time) *HS256 {
	cp := *h
	cp.now = now
	return &cp
}

// Issuer returns the issuer stamped into tokens.
func (h *HS256) Issuer() string { return h.issuer }

// Now returns the current time according to the configured clock.
func (h *HS256) Now() time.Time { return h.now() }

func (h *HS256) Sign(c Claims) (string, error) {
	if c.Email == "" {
		return "", ErrInvalidClaim
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := tok.SignedString(h.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	}
	if h.issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.issuer))
	}

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return h.key, nil
	}, opts...)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if claims.Email == "" {
		return Claims{}, ErrInvalidClaim
	}

	return claims, nil
}

// mapParseError folds the library's error zoo into our sentinels.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrIssuer
	default:
		return ErrInvalidClaim
	}
}
