package http

import (
	"net/http"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
)

type StatsHandler struct {
	StatsService *service.StatsService
}

// HandleAdminStats handles GET /admin-stats
//
//	@Summary		Shop totals
//	@Tags			Stats
//	@Produce		json
//	@Security		CookieAuth
//	@Success		200	{object}	bistrosdk.AdminStats	"users, menuItems, orders, revenue"
//	@Failure		403	{object}	bistrosdk.APIError		"error, error_description"
//	@Router			/admin-stats [get].
func (h *StatsHandler) HandleAdminStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.StatsService.Admin(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to compute admin stats")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, bistrosdk.AdminStats{
		Users:     s.Users,
		MenuItems: s.MenuItems,
		Orders:    s.Orders,
		Revenue:   s.Revenue,
	})
}

// HandleOrderStats handles GET /order-stats
//
//	@Summary		Sales per category
//	@Tags			Stats
//	@Produce		json
//	@Security		CookieAuth
//	@Success		200	{array}		bistrosdk.CategoryStats	"category, quantity, revenue"
//	@Failure		403	{object}	bistrosdk.APIError		"error, error_description"
//	@Router			/order-stats [get].
func (h *StatsHandler) HandleOrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.Orders(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to compute order stats")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(stats, func(cs domain.CategoryStats) bistrosdk.CategoryStats {
		return bistrosdk.CategoryStats{Category: cs.Category, Quantity: cs.Quantity, Revenue: cs.Revenue}
	}))
}
