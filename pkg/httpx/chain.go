package httpx

import "net/http"

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so that the first middleware listed runs first. Route
// registrations read top to bottom in request order:
//
//	httpx.Chain(h, g.RequireAuth, g.RequireAdmin, httpx.RateLimitBySubject(...))
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
