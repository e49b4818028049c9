package guard

import (
	"context"
	"time"
)

// Identity is the caller decoded from a valid credential. It lives only in
// the request context.
type Identity struct {
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

type contextKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// IdentityFromContext returns the authenticated caller, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}
