package payment_test

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/aussiebroadwan/bistro/internal/bistro/payment"
)

func TestAmountCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0.1 + 0.2, 30},
		{12, 1200},
		{0.005, 1},
		{999999.99, payment.MaxAmountCents},
	}
	for _, tt := range tests {
		got, err := payment.AmountCents(tt.price)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "price %v", tt.price)
	}

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), 0.004, 1_000_000, 1e17, 1e19} {
		got, err := payment.AmountCents(bad)
		require.ErrorIs(t, err, payment.ErrInvalidAmount, "price %v", bad)
		require.Zero(t, got)
	}
}

func TestDisabled(t *testing.T) {
	t.Parallel()

	_, err := payment.Disabled{}.CreateIntent(context.Background(), 100, payment.CurrencyUSD)
	require.ErrorIs(t, err, payment.ErrNotConfigured)
}

func TestStripe_CreateIntent(t *testing.T) {
	t.Parallel()

	var form map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc"}`))
	}))
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		MaxNetworkRetries: stripe.Int64(0),
	})
	p := payment.NewStripeWithBackend("sk_test_123", backend)

	secret, err := p.CreateIntent(context.Background(), 1999, payment.CurrencyUSD)
	require.NoError(t, err)
	require.Equal(t, "pi_123_secret_abc", secret)
	require.Equal(t, []string{"1999"}, form["amount"])
	require.Equal(t, []string{"usd"}, form["currency"])
	require.Equal(t, []string{"card"}, form["payment_method_types[0]"])
}
