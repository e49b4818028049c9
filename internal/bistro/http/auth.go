package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

// AuthHandler issues and clears the session cookie.
type AuthHandler struct {
	Guard *guard.Guard
}

// HandleToken handles POST /jwt
//
// Sign-in happens in the browser against the identity provider; this only
// turns the signed-in email into a session cookie.
//
//	@Summary		Issue session cookie
//	@Description	Signs a one-hour session token for the email and sets it as the HttpOnly "token" cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bistrosdk.TokenRequest		true	"Email to issue the session for"
//	@Success		200		{object}	bistrosdk.SuccessResponse	"success"
//	@Failure		400		{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		429		{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/jwt [post].
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	var req bistrosdk.TokenRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		bistrosdk.ErrInvalidRequest.WithDescription("email is required").WriteError(w)
		return
	}

	if err := h.Guard.Issue(w, req.Email); err != nil {
		log.Error("failed to issue session", "error", err)
		bistrosdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bistrosdk.SuccessResponse{Success: true})
}

// HandleLogout handles POST /logout
//
//	@Summary		Clear session cookie
//	@Description	Expires the "token" cookie. Copies of the token held elsewhere stay valid until they expire.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	bistrosdk.SuccessResponse	"success"
//	@Router			/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Guard.Revoke(w)
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.SuccessResponse{Success: true})
}
