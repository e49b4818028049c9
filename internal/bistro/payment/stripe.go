package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Stripe creates card payment intents through the Stripe API.
type Stripe struct {
	sc *client.API
}

func NewStripe(secretKey string) *Stripe {
	return &Stripe{sc: client.New(secretKey, nil)}
}

// NewStripeWithBackend points the client at a custom API backend.
func NewStripeWithBackend(secretKey string, api stripe.Backend) *Stripe {
	return &Stripe{sc: client.New(secretKey, &stripe.Backends{API: api})}
}

func (s *Stripe) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	if amountCents <= 0 {
		return "", ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	pi, err := s.sc.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("payment: create intent: %w", err)
	}
	return pi.ClientSecret, nil
}
