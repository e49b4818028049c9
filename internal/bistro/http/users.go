package http

import (
	"net/http"

	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
)

const msgUserExists = "user already exists"

// UsersHandler handles user registration and role management.
type UsersHandler struct {
	UserService *service.UserService
	Guard       *guard.Guard
}

// HandleCreate handles POST /users
//
//	@Summary		Register user
//	@Description	Creates the user record on first sign-in. Registering an existing email writes nothing and returns a null insertedId.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		bistrosdk.CreateUserRequest		true	"User profile"
//	@Success		201		{object}	bistrosdk.CreateUserResponse	"insertedId"
//	@Success		200		{object}	bistrosdk.CreateUserResponse	"user already exists"
//	@Failure		400		{object}	bistrosdk.APIError				"error, error_description"
//	@Failure		500		{object}	bistrosdk.APIError				"error, error_description"
//	@Router			/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req bistrosdk.CreateUserRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	id, created, err := h.UserService.CreateUser(r.Context(), req.Email, req.Name, req.PhotoURL)
	if err != nil {
		writeServiceError(w, r, err, "failed to create user")
		return
	}

	if !created {
		httpx.WriteJSON(w, http.StatusOK, bistrosdk.CreateUserResponse{Message: msgUserExists})
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, bistrosdk.CreateUserResponse{InsertedID: &id})
}

// HandleList handles GET /users
//
//	@Summary		List users
//	@Tags			Users
//	@Produce		json
//	@Security		CookieAuth
//	@Success		200	{array}		bistrosdk.User		"users"
//	@Failure		401	{object}	bistrosdk.APIError	"error, error_description"
//	@Failure		403	{object}	bistrosdk.APIError	"error, error_description"
//	@Failure		500	{object}	bistrosdk.APIError	"error, error_description"
//	@Router			/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(users, toUser))
}

// HandleAdminStatus handles GET /users/admin/{email}
//
//	@Summary		Check admin role
//	@Description	Reports whether the signed-in caller is an admin. Asking about anyone else is forbidden.
//	@Tags			Users
//	@Produce		json
//	@Security		CookieAuth
//	@Param			email	path		string							true	"Caller email"
//	@Success		200		{object}	bistrosdk.AdminStatusResponse	"admin"
//	@Failure		401		{object}	bistrosdk.APIError				"error, error_description"
//	@Failure		403		{object}	bistrosdk.APIError				"error, error_description"
//	@Failure		500		{object}	bistrosdk.APIError				"error, error_description"
//	@Router			/users/admin/{email} [get].
func (h *UsersHandler) HandleAdminStatus(w http.ResponseWriter, r *http.Request) {
	admin, err := h.Guard.IsAdmin(r.Context(), r.PathValue("email"))
	if err != nil {
		guard.WriteError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.AdminStatusResponse{Admin: admin})
}

// HandleGrantAdmin handles PATCH /users/admin/{id}
//
//	@Summary		Grant admin role
//	@Tags			Users
//	@Produce		json
//	@Security		CookieAuth
//	@Param			id	path		string						true	"User ID"
//	@Success		200	{object}	bistrosdk.ModifiedResponse	"modifiedCount"
//	@Failure		403	{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		404	{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/users/admin/{id} [patch].
func (h *UsersHandler) HandleGrantAdmin(w http.ResponseWriter, r *http.Request) {
	n, err := h.UserService.GrantAdmin(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to grant admin")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.ModifiedResponse{ModifiedCount: n})
}

// HandleRevokeAdmin handles DELETE /users/admin/{id}
//
//	@Summary		Revoke admin role
//	@Tags			Users
//	@Produce		json
//	@Security		CookieAuth
//	@Param			id	path		string						true	"User ID"
//	@Success		200	{object}	bistrosdk.ModifiedResponse	"modifiedCount"
//	@Failure		403	{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		404	{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/users/admin/{id} [delete].
func (h *UsersHandler) HandleRevokeAdmin(w http.ResponseWriter, r *http.Request) {
	n, err := h.UserService.RevokeAdmin(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to revoke admin")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.ModifiedResponse{ModifiedCount: n})
}

// HandleDelete handles DELETE /users/{id}
//
//	@Summary		Remove user
//	@Tags			Users
//	@Produce		json
//	@Security		CookieAuth
//	@Param			id	path		string						true	"User ID"
//	@Success		200	{object}	bistrosdk.DeletedResponse	"deletedCount"
//	@Failure		403	{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		404	{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	n, err := h.UserService.RemoveUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to remove user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.DeletedResponse{DeletedCount: n})
}
