package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	httpapi "github.com/aussiebroadwan/bistro/internal/bistro/http"
	"github.com/aussiebroadwan/bistro/internal/bistro/payment"
	"github.com/aussiebroadwan/bistro/internal/bistro/payment/paymenttest"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/internal/bistro/store/drivers/sqlite"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

func TestMain(m *testing.M) {
	// Every test shares 127.0.0.1 as its client IP.
	httpx.StrictLimit = httpx.PublicLimit
	httpx.ModerateLimit = httpx.PublicLimit
	httpx.LenientLimit = httpx.PublicLimit
	os.Exit(m.Run())
}

type testEnv struct {
	srv       *httptest.Server
	store     *sqlite.Store
	users     *service.UserService
	processor *paymenttest.Fake
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	g, err := guard.New(guard.Config{Secret: "router-test-secret-of-at-least-32-bytes"}, st.Users())
	require.NoError(t, err)

	fake := &paymenttest.Fake{}
	router := httpapi.NewRouter(g, "test", st, slogx.Discard(), []string{"http://localhost:5173"})
	router.UserService = &service.UserService{Store: st}
	router.MenuService = &service.MenuService{Store: st}
	router.ReviewService = &service.ReviewService{Store: st}
	router.CartService = &service.CartService{Store: st}
	router.PaymentService = &service.PaymentService{Store: st, Processor: fake}
	router.StatsService = &service.StatsService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, store: st, users: router.UserService, processor: fake}
}

// signIn registers email and returns a client holding its session cookie.
func (e *testEnv) signIn(t *testing.T, email string) (*bistrosdk.Client, string) {
	t.Helper()
	ctx := context.Background()

	c := bistrosdk.NewClient(e.srv.URL)
	resp, err := c.CreateUser(ctx, bistrosdk.CreateUserRequest{Email: email, Name: email})
	require.NoError(t, err)
	require.NoError(t, c.SignIn(ctx, email))

	u, err := e.users.GetUserByEmail(ctx, email)
	require.NoError(t, err)
	if resp.InsertedID != nil {
		require.Equal(t, u.ID, *resp.InsertedID)
	}
	return c, u.ID
}

func (e *testEnv) makeAdmin(t *testing.T, id string) {
	t.Helper()
	_, err := e.store.Users().SetRole(context.Background(), id, domain.RoleAdmin)
	require.NoError(t, err)
}

func requireAPIError(t *testing.T, err error, want *bistrosdk.APIError) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, want, "got %v", err)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	admin, adminID := env.signIn(t, "admin@bistro.test")
	env.makeAdmin(t, adminID)
	alice, aliceID := env.signIn(t, "alice@bistro.test")

	t.Run("create is idempotent", func(t *testing.T) {
		anon := bistrosdk.NewClient(env.srv.URL)
		resp, err := anon.CreateUser(ctx, bistrosdk.CreateUserRequest{Email: "ALICE@bistro.test", Name: "Other"})
		require.NoError(t, err)
		require.Nil(t, resp.InsertedID)
		require.Equal(t, "user already exists", resp.Message)

		users, err := admin.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
	})

	t.Run("create without email is rejected", func(t *testing.T) {
		anon := bistrosdk.NewClient(env.srv.URL)
		_, err := anon.CreateUser(ctx, bistrosdk.CreateUserRequest{Name: "Nobody"})
		requireAPIError(t, err, bistrosdk.ErrInvalidRequest)
	})

	t.Run("list requires admin", func(t *testing.T) {
		_, err := alice.ListUsers(ctx)
		requireAPIError(t, err, bistrosdk.ErrForbidden)

		_, err = bistrosdk.NewClient(env.srv.URL).ListUsers(ctx)
		requireAPIError(t, err, bistrosdk.ErrUnauthenticated)
	})

	t.Run("admin status only for self", func(t *testing.T) {
		ok, err := admin.IsAdmin(ctx, "admin@bistro.test")
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = alice.IsAdmin(ctx, "alice@bistro.test")
		require.NoError(t, err)
		require.False(t, ok)

		_, err = alice.IsAdmin(ctx, "admin@bistro.test")
		requireAPIError(t, err, bistrosdk.ErrForbidden)
	})

	t.Run("role mutations require admin", func(t *testing.T) {
		_, err := alice.GrantAdmin(ctx, aliceID)
		requireAPIError(t, err, bistrosdk.ErrForbidden)
		_, err = alice.RevokeAdmin(ctx, adminID)
		requireAPIError(t, err, bistrosdk.ErrForbidden)
		_, err = alice.DeleteUser(ctx, adminID)
		requireAPIError(t, err, bistrosdk.ErrForbidden)
	})

	t.Run("grant takes effect without a new token", func(t *testing.T) {
		res, err := admin.GrantAdmin(ctx, aliceID)
		require.NoError(t, err)
		require.Equal(t, int64(1), res.ModifiedCount)

		users, err := alice.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)

		res, err = admin.GrantAdmin(ctx, aliceID)
		require.NoError(t, err)
		require.Equal(t, int64(0), res.ModifiedCount)
	})

	t.Run("revoke takes effect without a new token", func(t *testing.T) {
		res, err := admin.RevokeAdmin(ctx, aliceID)
		require.NoError(t, err)
		require.Equal(t, int64(1), res.ModifiedCount)

		_, err = alice.ListUsers(ctx)
		requireAPIError(t, err, bistrosdk.ErrForbidden)
	})

	t.Run("unknown user id", func(t *testing.T) {
		_, err := admin.GrantAdmin(ctx, "missing")
		requireAPIError(t, err, bistrosdk.ErrNotFound)
		_, err = admin.DeleteUser(ctx, "missing")
		requireAPIError(t, err, bistrosdk.ErrNotFound)
	})

	t.Run("removed user loses admin access", func(t *testing.T) {
		bob, bobID := env.signIn(t, "bob@bistro.test")
		env.makeAdmin(t, bobID)
		_, err := bob.ListUsers(ctx)
		require.NoError(t, err)

		res, err := admin.DeleteUser(ctx, bobID)
		require.NoError(t, err)
		require.Equal(t, int64(1), res.DeletedCount)

		// Still authenticated, but no longer has a user record.
		_, err = bob.ListUsers(ctx)
		requireAPIError(t, err, bistrosdk.ErrForbidden)
	})
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	alice, _ := env.signIn(t, "alice@bistro.test")

	t.Run("empty email is rejected", func(t *testing.T) {
		err := bistrosdk.NewClient(env.srv.URL).SignIn(ctx, "  ")
		requireAPIError(t, err, bistrosdk.ErrInvalidRequest)
	})

	t.Run("tampered cookie is an invalid credential", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, env.srv.URL+"/carts?email=alice@bistro.test", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: guard.CookieName, Value: "not.a.jwt"})

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logout drops the cookie", func(t *testing.T) {
		_, err := alice.ListCart(ctx, "alice@bistro.test")
		require.NoError(t, err)

		require.NoError(t, alice.SignOut(ctx))

		_, err = alice.ListCart(ctx, "alice@bistro.test")
		requireAPIError(t, err, bistrosdk.ErrUnauthenticated)
	})
}

func TestMenuAndReviews(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	admin, adminID := env.signIn(t, "admin@bistro.test")
	env.makeAdmin(t, adminID)
	alice, _ := env.signIn(t, "alice@bistro.test")
	anon := bistrosdk.NewClient(env.srv.URL)

	salad := bistrosdk.MenuItemInput{Name: "Caesar", Recipe: "lettuce", Category: "salad", Price: 9.5}

	t.Run("mutations require admin", func(t *testing.T) {
		_, err := alice.AddMenuItem(ctx, salad)
		requireAPIError(t, err, bistrosdk.ErrForbidden)
		_, err = anon.AddMenuItem(ctx, salad)
		requireAPIError(t, err, bistrosdk.ErrUnauthenticated)
		_, err = alice.UpdateMenuItem(ctx, "any", salad)
		requireAPIError(t, err, bistrosdk.ErrForbidden)
		_, err = alice.DeleteMenuItem(ctx, "any")
		requireAPIError(t, err, bistrosdk.ErrForbidden)
	})

	var saladID string
	t.Run("admin manages the menu", func(t *testing.T) {
		res, err := admin.AddMenuItem(ctx, salad)
		require.NoError(t, err)
		saladID = res.InsertedID

		_, err = admin.AddMenuItem(ctx, bistrosdk.MenuItemInput{Name: "Margherita", Category: "pizza", Price: 14})
		require.NoError(t, err)

		_, err = admin.AddMenuItem(ctx, bistrosdk.MenuItemInput{Name: "Mystery", Category: "brunch", Price: 1})
		requireAPIError(t, err, bistrosdk.ErrInvalidRequest)

		upd := salad
		upd.Price = 10.25
		mod, err := admin.UpdateMenuItem(ctx, saladID, upd)
		require.NoError(t, err)
		require.Equal(t, int64(1), mod.ModifiedCount)

		_, err = admin.UpdateMenuItem(ctx, "missing", upd)
		requireAPIError(t, err, bistrosdk.ErrNotFound)
	})

	t.Run("menu reads are public", func(t *testing.T) {
		items, err := anon.ListMenu(ctx, "")
		require.NoError(t, err)
		require.Len(t, items, 2)

		items, err = anon.ListMenu(ctx, "salad")
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Equal(t, 10.25, items[0].Price)

		n, err := anon.MenuCount(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(2), n)

		item, err := anon.GetMenuItem(ctx, saladID)
		require.NoError(t, err)
		require.Equal(t, "Caesar", item.Name)

		_, err = anon.GetMenuItem(ctx, "missing")
		requireAPIError(t, err, bistrosdk.ErrNotFound)
	})

	t.Run("admin deletes", func(t *testing.T) {
		res, err := admin.DeleteMenuItem(ctx, saladID)
		require.NoError(t, err)
		require.Equal(t, int64(1), res.DeletedCount)

		_, err = admin.DeleteMenuItem(ctx, saladID)
		requireAPIError(t, err, bistrosdk.ErrNotFound)
	})

	t.Run("reviews", func(t *testing.T) {
		_, err := anon.AddReview(ctx, bistrosdk.ReviewInput{Name: "Anon", Rating: 5})
		requireAPIError(t, err, bistrosdk.ErrUnauthenticated)

		_, err = alice.AddReview(ctx, bistrosdk.ReviewInput{Name: "Alice", Details: "lovely", Rating: 4.5})
		require.NoError(t, err)

		_, err = alice.AddReview(ctx, bistrosdk.ReviewInput{Name: "Alice", Rating: 9})
		requireAPIError(t, err, bistrosdk.ErrInvalidRequest)

		reviews, err := anon.ListReviews(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		require.Equal(t, "lovely", reviews[0].Details)
	})
}

func TestCartsAndPayments(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)

	admin, adminID := env.signIn(t, "admin@bistro.test")
	env.makeAdmin(t, adminID)
	alice, _ := env.signIn(t, "alice@bistro.test")
	bob, _ := env.signIn(t, "bob@bistro.test")

	soup, err := admin.AddMenuItem(ctx, bistrosdk.MenuItemInput{Name: "Pho", Category: "soup", Price: 12})
	require.NoError(t, err)
	cake, err := admin.AddMenuItem(ctx, bistrosdk.MenuItemInput{Name: "Cheesecake", Category: "dessert", Price: 8})
	require.NoError(t, err)

	add := func(c *bistrosdk.Client, email, menuID string, price float64) string {
		t.Helper()
		res, err := c.AddToCart(ctx, bistrosdk.CartItemInput{MenuID: menuID, Email: email, Price: price})
		require.NoError(t, err)
		return res.InsertedID
	}

	a1 := add(alice, "alice@bistro.test", soup.InsertedID, 12)
	a2 := add(alice, "alice@bistro.test", cake.InsertedID, 8)
	b1 := add(bob, "bob@bistro.test", soup.InsertedID, 12)

	t.Run("cart is self only", func(t *testing.T) {
		_, err := alice.AddToCart(ctx, bistrosdk.CartItemInput{MenuID: soup.InsertedID, Email: "bob@bistro.test"})
		requireAPIError(t, err, bistrosdk.ErrForbidden)

		_, err = alice.ListCart(ctx, "bob@bistro.test")
		requireAPIError(t, err, bistrosdk.ErrForbidden)

		// Admins get no exemption.
		_, err = admin.ListCart(ctx, "alice@bistro.test")
		requireAPIError(t, err, bistrosdk.ErrForbidden)

		_, err = alice.DeleteCartItem(ctx, b1)
		requireAPIError(t, err, bistrosdk.ErrForbidden)

		items, err := alice.ListCart(ctx, "alice@bistro.test")
		require.NoError(t, err)
		require.Len(t, items, 2)
	})

	t.Run("payment intent", func(t *testing.T) {
		secret, err := alice.CreatePaymentIntent(ctx, 20)
		require.NoError(t, err)
		require.NotEmpty(t, secret)

		calls := env.processor.Calls()
		require.Len(t, calls, 1)
		require.Equal(t, int64(2000), calls[0].AmountCents)
		require.Equal(t, payment.CurrencyUSD, calls[0].Currency)

		for _, price := range []float64{0, 0.004, 1e17} {
			_, err = alice.CreatePaymentIntent(ctx, price)
			requireAPIError(t, err, bistrosdk.ErrInvalidRequest)
		}
		require.Len(t, env.processor.Calls(), 1)

		_, err = bistrosdk.NewClient(env.srv.URL).CreatePaymentIntent(ctx, 20)
		requireAPIError(t, err, bistrosdk.ErrUnauthenticated)
	})

	t.Run("processor failure is a bad gateway", func(t *testing.T) {
		env.processor.Fail(errors.New("card network down"))
		defer env.processor.Fail(nil)

		_, err := alice.CreatePaymentIntent(ctx, 20)
		requireAPIError(t, err, bistrosdk.ErrPaymentFailed)
	})

	t.Run("payment is self only", func(t *testing.T) {
		_, err := alice.RecordPayment(ctx, bistrosdk.PaymentInput{Email: "bob@bistro.test", TransactionID: "pi_1"})
		requireAPIError(t, err, bistrosdk.ErrForbidden)

		_, err = alice.ListPayments(ctx, "bob@bistro.test")
		requireAPIError(t, err, bistrosdk.ErrForbidden)
	})

	t.Run("recording clears paid cart items", func(t *testing.T) {
		res, err := alice.RecordPayment(ctx, bistrosdk.PaymentInput{
			Email:         "alice@bistro.test",
			Price:         20,
			TransactionID: "pi_alice_1",
			CartIDs:       []string{a1, a2, b1},
			MenuItemIDs:   []string{soup.InsertedID, cake.InsertedID},
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.PaymentResult.InsertedID)
		require.Equal(t, int64(2), res.DeleteResult.DeletedCount)

		items, err := alice.ListCart(ctx, "alice@bistro.test")
		require.NoError(t, err)
		require.Empty(t, items)

		// Bob's item was listed but is not Alice's to clear.
		items, err = bob.ListCart(ctx, "bob@bistro.test")
		require.NoError(t, err)
		require.Len(t, items, 1)

		history, err := alice.ListPayments(ctx, "alice@bistro.test")
		require.NoError(t, err)
		require.Len(t, history, 1)
		require.Equal(t, "pi_alice_1", history[0].TransactionID)
		require.Equal(t, domain.PaymentStatusPending, history[0].Status)
	})

	t.Run("stats require admin", func(t *testing.T) {
		_, err := alice.AdminStats(ctx)
		requireAPIError(t, err, bistrosdk.ErrForbidden)
		_, err = alice.OrderStats(ctx)
		requireAPIError(t, err, bistrosdk.ErrForbidden)

		stats, err := admin.AdminStats(ctx)
		require.NoError(t, err)
		require.Equal(t, bistrosdk.AdminStats{Users: 3, MenuItems: 2, Orders: 1, Revenue: 20}, stats)

		orders, err := admin.OrderStats(ctx)
		require.NoError(t, err)
		require.Equal(t, []bistrosdk.CategoryStats{
			{Category: "dessert", Quantity: 1, Revenue: 8},
			{Category: "soup", Quantity: 1, Revenue: 12},
		}, orders)
	})
}

func TestSystemRoutes(t *testing.T) {
	ctx := context.Background()
	env := newEnv(t)
	c := bistrosdk.NewClient(env.srv.URL)

	t.Run("banner", func(t *testing.T) {
		resp, err := http.Get(env.srv.URL + "/")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, httpapi.Banner, string(body))
	})

	t.Run("unknown path", func(t *testing.T) {
		resp, err := http.Get(env.srv.URL + "/nope")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("livez", func(t *testing.T) {
		h, err := c.GetLiveness(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", h.Status)
		require.Equal(t, "test", h.Version)
	})

	t.Run("readyz", func(t *testing.T) {
		h, err := c.GetReadiness(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", h.Status)
		require.NotNil(t, h.Checks)
		require.Equal(t, "ok", h.Checks.Database)
	})

	t.Run("metrics", func(t *testing.T) {
		resp, err := http.Get(env.srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "bistro_http_requests_total")
		require.Contains(t, string(body), `route="GET /livez"`)
	})

	t.Run("swagger document", func(t *testing.T) {
		resp, err := http.Get(env.srv.URL + "/swagger/doc.json")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, string(body), `"title": "Bistro Boss API"`)
		require.Contains(t, string(body), `"/create-payment-intent"`)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodOptions, env.srv.URL+"/carts", nil)
		require.NoError(t, err)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("readyz degrades when the database is gone", func(t *testing.T) {
		require.NoError(t, env.store.Close())

		_, err := c.GetReadiness(ctx)
		var apiErr *bistrosdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		require.Contains(t, apiErr.Description, `"status":"degraded"`)
	})
}
