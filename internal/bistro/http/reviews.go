package http

import (
	"net/http"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
)

type ReviewsHandler struct {
	ReviewService *service.ReviewService
}

// HandleList handles GET /reviews
//
//	@Summary		List reviews
//	@Tags			Reviews
//	@Produce		json
//	@Success		200	{array}	bistrosdk.Review	"reviews, newest first"
//	@Router			/reviews [get].
func (h *ReviewsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.ReviewService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "failed to list reviews")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(reviews, toReview))
}

// HandleCreate handles POST /reviews
//
//	@Summary		Add review
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			request	body		bistrosdk.ReviewInput		true	"Review"
//	@Success		201		{object}	bistrosdk.InsertedResponse	"insertedId"
//	@Failure		400		{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		401		{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		403		{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/reviews [post].
func (h *ReviewsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req bistrosdk.ReviewInput
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	id, err := h.ReviewService.Create(r.Context(), domain.Review{
		Name:    req.Name,
		Details: req.Details,
		Rating:  req.Rating,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to create review")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, bistrosdk.InsertedResponse{InsertedID: id})
}
