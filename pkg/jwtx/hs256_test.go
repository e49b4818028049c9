package jwtx_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/bistro/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newHS256(t *testing.T, issuer string) *jwtx.HS256 {
	t.Helper()
	key, err := jwtx.DeriveKey(testSecret)
	require.NoError(t, err)
	h, err := jwtx.NewHS256(key, issuer)
	require.NoError(t, err)
	return h
}

func TestDeriveKey(t *testing.T) {
	t.Run("rejects short secrets", func(t *testing.T) {
		_, err := jwtx.DeriveKey("short")
		require.ErrorIs(t, err, jwtx.ErrWeakSecret)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := jwtx.DeriveKey(testSecret)
		require.NoError(t, err)
		b, err := jwtx.DeriveKey(testSecret)
		require.NoError(t, err)
		require.Len(t, a, 32)
		require.Equal(t, a, b)
		require.NotEqual(t, []byte(testSecret), a)
	})
}

func TestHS256RoundTrip(t *testing.T) {
	h := newHS256(t, "bistro")

	token, err := h.Sign(jwtx.NewSessionClaims("a@b.com", time.Hour, "bistro", time.Now()))
	require.NoError(t, err)

	claims, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "a@b.com", claims.Email)
}

func TestHS256RejectsExpired(t *testing.T) {
	h := newHS256(t, "")
	issued := time.Now().Add(-2 * time.Hour)

	token, err := h.Sign(jwtx.NewSessionClaims("a@b.com", time.Hour, "", issued))
	require.NoError(t, err)

	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestHS256RejectsTampering(t *testing.T) {
	h := newHS256(t, "")
	token, err := h.Sign(jwtx.NewSessionClaims("a@b.com", time.Hour, "", time.Now()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	t.Run("payload swapped", func(t *testing.T) {
		forged := base64.RawURLEncoding.EncodeToString([]byte(`{"email":"admin@b.com","exp":9999999999}`))
		_, err := h.Verify(parts[0] + "." + forged + "." + parts[2])
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("signature flipped", func(t *testing.T) {
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		_, err := h.Verify(parts[0] + "." + parts[1] + "." + string(sig))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := h.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("other key", func(t *testing.T) {
		key, err := jwtx.DeriveKey(strings.Repeat("z", 40))
		require.NoError(t, err)
		other, err := jwtx.NewHS256(key, "")
		require.NoError(t, err)

		_, err = other.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}

func TestHS256RejectsOtherAlgorithms(t *testing.T) {
	h := newHS256(t, "")
	key, err := jwtx.DeriveKey(testSecret)
	require.NoError(t, err)

	// Same key, different HMAC size. Only HS256 is accepted.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, jwtx.NewSessionClaims("a@b.com", time.Hour, "", time.Now()))
	raw, err := tok.SignedString(key)
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestHS256IssuerAndEmailChecks(t *testing.T) {
	h := newHS256(t, "bistro")

	t.Run("wrong issuer", func(t *testing.T) {
		other := newHS256(t, "someone-else")
		token, err := other.Sign(jwtx.NewSessionClaims("a@b.com", time.Hour, "someone-else", time.Now()))
		require.NoError(t, err)

		_, err = h.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("sign refuses empty email", func(t *testing.T) {
		_, err := h.Sign(jwtx.Claims{})
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}

func TestHS256WithClock(t *testing.T) {
	h := newHS256(t, "")
	issued := time.Now()

	token, err := h.Sign(jwtx.NewSessionClaims("a@b.com", time.Hour, "", issued))
	require.NoError(t, err)

	later := h.WithClock(func() time.Time { return issued.Add(61 * time.Minute) })
	_, err = later.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)

	_, err = h.Verify(token)
	require.NoError(t, err)
}
