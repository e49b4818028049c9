package bistrosdk_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
)

func TestClient_CookieRoundTrip(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /jwt", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "token", Value: "abc", Path: "/", HttpOnly: true})
		_ = json.NewEncoder(w).Encode(bistrosdk.SuccessResponse{Success: true})
	})
	mux.HandleFunc("GET /carts", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("token")
		if err != nil || c.Value != "abc" {
			bistrosdk.ErrUnauthenticated.WriteError(w)
			return
		}
		_ = json.NewEncoder(w).Encode([]bistrosdk.CartItem{{ID: "1", Email: r.URL.Query().Get("email")}})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := bistrosdk.NewClient(srv.URL)

	_, err := client.ListCart(t.Context(), "a@example.com")
	require.ErrorIs(t, err, bistrosdk.ErrUnauthenticated)

	require.NoError(t, client.SignIn(t.Context(), "a@example.com"))

	items, err := client.ListCart(t.Context(), "a@example.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "a@example.com", items[0].Email)
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	t.Run("structured error body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			bistrosdk.ErrForbidden.WithDescription("not yours").WriteError(w)
		}))
		t.Cleanup(srv.Close)

		_, err := bistrosdk.NewClient(srv.URL).ListPayments(t.Context(), "b@example.com")
		require.ErrorIs(t, err, bistrosdk.ErrForbidden)
		require.NotErrorIs(t, err, bistrosdk.ErrUnauthenticated)

		var apiErr *bistrosdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, "not yours", apiErr.Description)
	})

	t.Run("plain text body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		_, err := bistrosdk.NewClient(srv.URL).MenuCount(t.Context())
		var apiErr *bistrosdk.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})
}

func TestClient_CreateUserDuplicate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"user already exists","insertedId":null}`))
	}))
	t.Cleanup(srv.Close)

	resp, err := bistrosdk.NewClient(srv.URL).CreateUser(t.Context(), bistrosdk.CreateUserRequest{Email: "c@example.com"})
	require.NoError(t, err)
	require.Nil(t, resp.InsertedID)
	require.Equal(t, "user already exists", resp.Message)
}
