// Package paymenttest provides an in-memory payment.Processor for tests.
package paymenttest

import (
	"context"
	"fmt"
	"sync"

	"github.com/aussiebroadwan/bistro/internal/bistro/payment"
)

var _ payment.Processor = (*Fake)(nil)

// Fake records requested intents and returns predictable client secrets.
// Set Err to make every call fail.
type Fake struct {
	mu      sync.Mutex
	Err     error
	Intents []Intent
}

type Intent struct {
	AmountCents int64
	Currency    string
}

func (f *Fake) CreateIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return "", f.Err
	}
	f.Intents = append(f.Intents, Intent{AmountCents: amountCents, Currency: currency})
	return fmt.Sprintf("pi_fake_%d_secret_%d", len(f.Intents), amountCents), nil
}

// Fail makes later calls return err. A nil err restores success.
func (f *Fake) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

// Calls returns a copy of the recorded intents.
func (f *Fake) Calls() []Intent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Intent(nil), f.Intents...)
}
