// Package guard authenticates callers from the session cookie and makes the
// role-based access decisions for every protected route.
package guard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
	"github.com/aussiebroadwan/bistro/pkg/jwtx"
)

// CookieName is the cookie that carries the session credential.
const CookieName = "token"

// EnvProduction switches the cookie to Secure + SameSite=None.
const EnvProduction = "prod"

// Config configures a Guard. Sessions always last jwtx.DefaultSessionTTL.
type Config struct {
	Secret string
	Env    string
	Issuer string // optional
}

// UserLookup is the single point-read the guard needs for role checks.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

// Guard holds only immutable configuration and is safe for concurrent use.
type Guard struct {
	tokens   *jwtx.HS256
	users    UserLookup
	ttl      time.Duration
	secure   bool
	sameSite http.SameSite
}

// New derives the signing key from cfg.Secret and returns a Guard that
// resolves roles through users.
func New(cfg Config, users UserLookup) (*Guard, error) {
	if users == nil {
		return nil, errors.New("guard: user lookup is required")
	}

	key, err := jwtx.DeriveKey(cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("guard: %w", err)
	}
	tokens, err := jwtx.NewHS256(key, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("guard: %w", err)
	}

	g := &Guard{
		tokens:   tokens,
		users:    users,
		ttl:      jwtx.DefaultSessionTTL,
		secure:   false,
		sameSite: http.SameSiteStrictMode,
	}
	if cfg.Env == EnvProduction {
		g.secure = true
		g.sameSite = http.SameSiteNoneMode
	}
	return g, nil
}

// WithClock returns a copy of g that issues and verifies against now.
func (g *Guard) WithClock(now func() time.Time) *Guard {
	cp := *g
	cp.tokens = g.tokens.WithClock(now)
	return &cp
}

// Authenticate reads and verifies the session cookie. It never touches the
// database.
func (g *Guard) Authenticate(r *http.Request) (Identity, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Identity{}, ErrUnauthenticated
	}

	claims, err := g.tokens.Verify(c.Value)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	id := Identity{
		Email:   claims.Email,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}

// IssueToken signs a credential for email. It returns the token and its
// expiry.
func (g *Guard) IssueToken(email string) (string, time.Time, error) {
	email = jwtx.NormaliseEmail(email)
	if email == "" {
		return "", time.Time{}, fmt.Errorf("guard: issue: %w", jwtx.ErrInvalidClaim)
	}

	claims := jwtx.NewSessionClaims(email, g.ttl, g.tokens.Issuer(), g.tokens.Now())
	raw, err := g.tokens.Sign(claims)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("guard: issue: %w", err)
	}
	return raw, claims.ExpiresAt.Time, nil
}

// Issue signs a credential for email and sets it as the session cookie.
func (g *Guard) Issue(w http.ResponseWriter, email string) error {
	raw, exp, err := g.IssueToken(email)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    raw,
		Path:     "/",
		Expires:  exp,
		MaxAge:   int(g.ttl.Seconds()),
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: g.sameSite,
	})
	return nil
}

// Revoke tells the client to drop the session cookie. Tokens already copied
// elsewhere stay valid until they expire.
func (g *Guard) Revoke(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: g.sameSite,
	})
}

// IsAdmin performs one point-read of the user record. An unknown email is not
// an admin; any other lookup failure is returned with false.
func (g *Guard) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := g.users.GetUserByEmail(ctx, jwtx.NormaliseEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("guard: role lookup: %w", err)
	}
	return u.IsAdmin(), nil
}

// AuthorizeSelf allows the caller to touch only resources keyed by their own
// email.
func AuthorizeSelf(id Identity, email string) error {
	if id.Email == "" || jwtx.NormaliseEmail(email) != jwtx.NormaliseEmail(id.Email) {
		return ErrForbidden
	}
	return nil
}

func isDenial(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrInvalidCredential) ||
		errors.Is(err, ErrForbidden)
}
