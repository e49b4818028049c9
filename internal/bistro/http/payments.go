package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

type PaymentsHandler struct {
	PaymentService *service.PaymentService
}

// HandleCreateIntent handles POST /create-payment-intent
//
//	@Summary		Create payment intent
//	@Description	Creates a card payment intent for price dollars (rounded to cents, USD) and returns its client secret.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			request	body		bistrosdk.PaymentIntentRequest	true	"Amount in dollars"
//	@Success		200		{object}	bistrosdk.PaymentIntentResponse	"clientSecret"
//	@Failure		400		{object}	bistrosdk.APIError				"error, error_description"
//	@Failure		403		{object}	bistrosdk.APIError				"error, error_description"
//	@Failure		502		{object}	bistrosdk.APIError				"error, error_description"
//	@Router			/create-payment-intent [post].
func (h *PaymentsHandler) HandleCreateIntent(w http.ResponseWriter, r *http.Request) {
	var req bistrosdk.PaymentIntentRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	secret, err := h.PaymentService.CreateIntent(r.Context(), req.Price)
	if errors.Is(err, service.ErrInvalidInput) {
		writeServiceError(w, r, err, "")
		return
	}
	if err != nil {
		slogx.FromContext(r.Context()).Error("payment processor failed", "error", err)
		bistrosdk.ErrPaymentFailed.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, bistrosdk.PaymentIntentResponse{ClientSecret: secret})
}

// HandleRecord handles POST /payments
//
//	@Summary		Record payment
//	@Description	Stores the payment and removes the paid items from the caller's cart in one transaction.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			request	body		bistrosdk.PaymentInput		true	"Payment"
//	@Success		201		{object}	bistrosdk.PaymentResponse	"paymentResult, deleteResult"
//	@Failure		400		{object}	bistrosdk.APIError			"error, error_description"
//	@Failure		403		{object}	bistrosdk.APIError			"error, error_description"
//	@Router			/payments [post].
func (h *PaymentsHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var req bistrosdk.PaymentInput
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	if err := guard.AuthorizeSelf(identity(r), req.Email); err != nil {
		guard.WriteError(w, r, err)
		return
	}

	res, err := h.PaymentService.Record(r.Context(), domain.Payment{
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		CartIDs:       req.CartIDs,
		MenuItemIDs:   req.MenuItemIDs,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to record payment")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, bistrosdk.PaymentResponse{
		PaymentResult: bistrosdk.InsertedResponse{InsertedID: res.PaymentID},
		DeleteResult:  bistrosdk.DeletedResponse{DeletedCount: res.DeletedItems},
	})
}

// HandleHistory handles GET /payments/{email}
//
//	@Summary		Payment history
//	@Tags			Payments
//	@Produce		json
//	@Security		CookieAuth
//	@Param			email	path		string				true	"Caller email"
//	@Success		200		{array}		bistrosdk.Payment	"payments, newest first"
//	@Failure		403		{object}	bistrosdk.APIError	"error, error_description"
//	@Router			/payments/{email} [get].
func (h *PaymentsHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	payments, err := h.PaymentService.History(r.Context(), r.PathValue("email"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list payments")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(payments, toPayment))
}
