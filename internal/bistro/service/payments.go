package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/payment"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
	"github.com/aussiebroadwan/bistro/pkg/idx"
	"github.com/aussiebroadwan/bistro/pkg/jwtx"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

type PaymentService struct {
	Store     store.Store
	Processor payment.Processor
}

// CreateIntent asks the processor for a card payment of price dollars and
// returns the client secret.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	cents, err := payment.AmountCents(price)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	secret, err := s.Processor.CreateIntent(ctx, cents, payment.CurrencyUSD)
	if err != nil {
		return "", err
	}

	slogx.FromContext(ctx).Info("payment intent created", slog.Int64("amount_cents", cents))
	return secret, nil
}

// RecordResult is what Record wrote.
type RecordResult struct {
	PaymentID    string
	DeletedItems int64
}

// Record stores a completed payment and removes the paid items from the
// payer's cart in one transaction. Cart ids that belong to other users are
// left alone.
func (s *PaymentService) Record(ctx context.Context, p domain.Payment) (RecordResult, error) {
	p.Email = jwtx.NormaliseEmail(p.Email)
	p.TransactionID = strings.TrimSpace(p.TransactionID)

	switch {
	case p.Email == "":
		return RecordResult{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	case p.TransactionID == "":
		return RecordResult{}, fmt.Errorf("%w: transactionId is required", ErrInvalidInput)
	case p.Price < 0:
		return RecordResult{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	p.ID = idx.New().String()
	p.Status = domain.PaymentStatusPending
	p.CreatedAt = time.Now().UTC()

	var res RecordResult
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Payments().CreatePayment(ctx, p); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		n, err := tx.Carts().DeleteCartItemsForEmail(ctx, p.Email, p.CartIDs)
		if err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		res = RecordResult{PaymentID: p.ID, DeletedItems: n}
		return nil
	})
	if err != nil {
		return RecordResult{}, err
	}

	slogx.FromContext(ctx).Info("payment recorded",
		slog.String("payment_id", p.ID),
		slog.Int64("cart_items_removed", res.DeletedItems),
	)
	return res, nil
}

// History returns the payments of email, newest first.
func (s *PaymentService) History(ctx context.Context, email string) ([]domain.Payment, error) {
	return s.Store.Payments().ListPaymentsByEmail(ctx, jwtx.NormaliseEmail(email))
}
