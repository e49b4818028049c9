package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

// writeServiceError maps service errors onto API errors. Unexpected errors
// are logged with msg and reported as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		bistrosdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrCartItemNotFound):
		bistrosdk.ErrNotFound.WithDescription(err.Error()).WriteError(w)
	case errors.Is(err, service.ErrNotOwner):
		guard.WriteError(w, r, guard.ErrForbidden)
	default:
		slogx.FromContext(r.Context()).Error(msg, "error", err)
		bistrosdk.ErrServerError.WriteError(w)
	}
}

func writeBadBody(w http.ResponseWriter) {
	bistrosdk.ErrInvalidRequest.WithDescription("Invalid JSON in request body").WriteError(w)
}

// identity returns the caller attached by guard.RequireAuth.
func identity(r *http.Request) guard.Identity {
	id, _ := guard.IdentityFromContext(r.Context())
	return id
}
