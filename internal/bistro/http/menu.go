package http

import (
	"net/http"

	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
)

type MenuHandler struct {
	MenuService *service.MenuService
}

// HandleList handles GET /menu
//
//	@Summary		List menu items
//	@Tags			Menu
//	@Produce		json
//	@Param			category	query		string				false	"Only items in this category"
//	@Success		200			{array}		bistrosdk.MenuItem	"menu items"
//	@Router			/menu [get].
func (h *MenuHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.MenuService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list menu")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(items, toMenuItem))
}

// HandleCount handles GET /menuCount
//
//	@Summary		Count menu items
//	@Tags			Menu
//	@Produce		json
//	@Success		200	{object}	bistrosdk.CountResponse	"count"
//	@Router			/menuCount [get].
func (h *MenuHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.MenuService.Count(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to count menu")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.CountResponse{Count: n})
}

// HandleGet handles GET /menu/{id}
//
//	@Summary		Get menu item
//	@Tags			Menu
//	@Produce		json
//	@Param			id	path		string				true	"Menu item ID"
//	@Success		200	{object}	bistrosdk.MenuItem	"menu item"
//	@Failure		404	{object}	bistrosdk.APIError	"error, error_description"
//	@Router			/menu/{id} [get].
func (h *MenuHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	item, err := h.MenuService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get menu item")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toMenuItem(item))
}

// HandleCreate handles POST /menu
//
//	@Summary		Add menu item
//	@Tags			Menu
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			request	body		bistrosdk.MenuItemInput		true	"Menu item"
//	@Success		201		{object}	bistrosdk.InsertedResponse	"insertedId"
//	@Failure		400		{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		403		{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/menu [post].
func (h *MenuHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req bistrosdk.MenuItemInput
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	id, err := h.MenuService.Create(r.Context(), fromMenuItemInput(req))
	if err != nil {
		writeServiceError(w, r, err, "failed to create menu item")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, bistrosdk.InsertedResponse{InsertedID: id})
}

// HandleUpdate handles PATCH /menu/{id}
//
//	@Summary		Update menu item
//	@Description	Replaces every field of the item.
//	@Tags			Menu
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			id		path		string						true	"Menu item ID"
//	@Param			request	body		bistrosdk.MenuItemInput		true	"Menu item"
//	@Success		200		{object}	bistrosdk.ModifiedResponse	"modifiedCount"
//	@Failure		400		{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		403		{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		404		{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/menu/{id} [patch].
func (h *MenuHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req bistrosdk.MenuItemInput
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	n, err := h.MenuService.Update(r.Context(), r.PathValue("id"), fromMenuItemInput(req))
	if err != nil {
		writeServiceError(w, r, err, "failed to update menu item")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.ModifiedResponse{ModifiedCount: n})
}

// HandleDelete handles DELETE /menu/{id}
//
//	@Summary		Delete menu item
//	@Tags			Menu
//	@Produce		json
//	@Security		CookieAuth
//	@Param			id	path		string						true	"Menu item ID"
//	@Success		200	{object}	bistrosdk.DeletedResponse	"deletedCount"
//	@Failure		403	{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		404	{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/menu/{id} [delete].
func (h *MenuHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	n, err := h.MenuService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "failed to delete menu item")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.DeletedResponse{DeletedCount: n})
}
