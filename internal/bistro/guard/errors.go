package guard

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

var (
	// ErrUnauthenticated means no credential was presented.
	ErrUnauthenticated = errors.New("guard: unauthenticated")

	// ErrInvalidCredential means a credential was presented but failed
	// signature, algorithm, expiry or claim checks.
	ErrInvalidCredential = errors.New("guard: invalid credential")

	// ErrForbidden means the caller is known but may not touch the resource.
	ErrForbidden = errors.New("guard: forbidden")
)

// WriteError maps a guard decision onto the wire. Anything that is not one of
// the guard sentinels is reported as a 500 and logged, never as a pass.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		bistrosdk.ErrUnauthenticated.WriteError(w)
	case errors.Is(err, ErrInvalidCredential):
		bistrosdk.ErrInvalidCredential.WriteError(w)
	case errors.Is(err, ErrForbidden):
		bistrosdk.ErrForbidden.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("access check failed", "err", err)
		bistrosdk.ErrServerError.WriteError(w)
	}
}
