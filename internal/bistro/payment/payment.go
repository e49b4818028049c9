// Package payment creates payment intents with an external processor.
package payment

import (
	"context"
	"errors"
	"math"
)

const CurrencyUSD = "usd"

// MaxAmountCents is the largest single charge the processor accepts.
const MaxAmountCents = 99_999_999

var (
	ErrInvalidAmount = errors.New("payment: invalid amount")
	ErrNotConfigured = errors.New("payment: processor not configured")
)

// Processor creates a payment intent and returns the client secret the
// browser uses to confirm it.
type Processor interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}

// AmountCents converts a dollar price into whole cents, rounding to the
// nearest cent. The result is within [1, MaxAmountCents].
func AmountCents(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, ErrInvalidAmount
	}
	cents := math.Round(price * 100)
	if cents < 1 || cents > MaxAmountCents {
		return 0, ErrInvalidAmount
	}
	return int64(cents), nil
}

// Disabled is the processor used when no API key is configured.
type Disabled struct{}

func (Disabled) CreateIntent(context.Context, int64, string) (string, error) {
	return "", ErrNotConfigured
}
