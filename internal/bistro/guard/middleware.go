package guard

import (
	"net/http"

	"github.com/aussiebroadwan/bistro/pkg/httpx"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

// RequireAuth rejects requests without a valid session cookie and attaches
// the caller's Identity to the request context.
func (g *Guard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := g.Authenticate(r)
		observe(stageAuthenticate, err)
		if err != nil {
			slogx.FromContext(r.Context()).Info("authentication rejected", "err", err)
			WriteError(w, r, err)
			return
		}

		ctx := WithIdentity(r.Context(), id)
		ctx = httpx.WithSubject(ctx, id.Email)
		ctx = slogx.With(ctx, "email", id.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin authenticates the caller and then checks the admin role with
// a fresh lookup. A failed lookup is a 500, never a pass.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return g.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := IdentityFromContext(r.Context())

		admin, err := g.IsAdmin(r.Context(), id.Email)
		if err == nil && !admin {
			err = ErrForbidden
		}
		observe(stageAdmin, err)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	}))
}

// RequireSelf allows the request only when the email picked out of it by
// emailOf matches the authenticated caller. Chain it after RequireAuth.
func RequireSelf(emailOf func(*http.Request) string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok {
				WriteError(w, r, ErrUnauthenticated)
				return
			}

			err := AuthorizeSelf(id, emailOf(r))
			observe(stageSelf, err)
			if err != nil {
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PathEmail reads the email from a route wildcard.
func PathEmail(name string) func(*http.Request) string {
	return func(r *http.Request) string { return r.PathValue(name) }
}

// QueryEmail reads the email from a query parameter.
func QueryEmail(name string) func(*http.Request) string {
	return func(r *http.Request) string { return r.URL.Query().Get(name) }
}
