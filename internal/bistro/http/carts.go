package http

import (
	"net/http"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
)

// CartsHandler serves the per-user cart routes.
type CartsHandler struct {
	CartService *service.CartService
}

// HandleList handles GET /carts
//
//	@Summary		List cart
//	@Tags			Carts
//	@Produce		json
//	@Security		CookieAuth
//	@Param			email	query		string				true	"Caller email"
//	@Success		200		{array}		bistrosdk.CartItem	"cart items"
//	@Failure		401		{object}	bistrosdk.APIError	"error, error_description"
//	@Failure		403		{object}	bistrosdk.APIError	"error, error_description"
//	@Router			/carts [get].
func (h *CartsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.CartService.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list cart")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(items, toCartItem))
}

// HandleAdd handles POST /carts
//
//	@Summary		Add to cart
//	@Description	The body email must be the caller's own.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			request	body		bistrosdk.CartItemInput		true	"Cart item"
//	@Success		201		{object}	bistrosdk.InsertedResponse	"insertedId"
//	@Failure		400		{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		403		{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/carts [post].
func (h *CartsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req bistrosdk.CartItemInput
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	if err := guard.AuthorizeSelf(identity(r), req.Email); err != nil {
		guard.WriteError(w, r, err)
		return
	}

	id, err := h.CartService.Add(r.Context(), domain.CartItem{
		MenuID: req.MenuID,
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Price:  req.Price,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to add cart item")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, bistrosdk.InsertedResponse{InsertedID: id})
}

// HandleDelete handles DELETE /carts/{id}
//
//	@Summary		Remove from cart
//	@Tags			Carts
//	@Produce		json
//	@Security		CookieAuth
//	@Param			id	path		string						true	"Cart item ID"
//	@Success		200	{object}	bistrosdk.DeletedResponse	"deletedCount"
//	@Failure		403	{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		404	{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/carts/{id} [delete].
func (h *CartsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	n, err := h.CartService.Remove(r.Context(), identity(r).Email, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to remove cart item")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.DeletedResponse{DeletedCount: n})
}
