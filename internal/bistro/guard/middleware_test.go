package guard_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	"github.com/aussiebroadwan/bistro/pkg/bistrosdk"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
)

// newGuardedServer mounts a tiny app exercising every guard stage.
func newGuardedServer(t *testing.T, g *guard.Guard) *httptest.Server {
	t.Helper()

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := guard.IdentityFromContext(r.Context())
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"email":   id.Email,
			"subject": httpx.SubjectFromContext(r.Context()),
		})
	})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /login/{email}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, g.Issue(w, r.PathValue("email")))
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("POST /logout", func(w http.ResponseWriter, r *http.Request) {
		g.Revoke(w)
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /me", g.RequireAuth(ok))
	mux.Handle("GET /admin", g.RequireAdmin(ok))
	mux.Handle("GET /carts", httpx.Chain(ok, g.RequireAuth, guard.RequireSelf(guard.QueryEmail("email"))))
	mux.Handle("GET /payments/{email}", httpx.Chain(ok, g.RequireAuth, guard.RequireSelf(guard.PathEmail("email"))))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newJarClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func decodeAPIError(t *testing.T, resp *http.Response) bistrosdk.APIError {
	t.Helper()
	var e bistrosdk.APIError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	return e
}

func do(t *testing.T, c *http.Client, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), method, url, nil)
	require.NoError(t, err)
	resp, err := c.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	g := newGuard(t, newFakeUsers())
	srv := newGuardedServer(t, g)

	t.Run("no cookie is 403 unauthenticated", func(t *testing.T) {
		resp := do(t, http.DefaultClient, http.MethodGet, srv.URL+"/me")
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, bistrosdk.ErrorCodeUnauthenticated, decodeAPIError(t, resp).Code)
	})

	t.Run("bad cookie is 401 invalid credential", func(t *testing.T) {
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/me", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: guard.CookieName, Value: "forged.token.value"})

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, bistrosdk.ErrorCodeInvalidCredential, decodeAPIError(t, resp).Code)
	})

	t.Run("identity and subject reach the handler", func(t *testing.T) {
		c := newJarClient(t)
		require.Equal(t, http.StatusOK, do(t, c, http.MethodPost, srv.URL+"/login/a@b.com").StatusCode)

		resp := do(t, c, http.MethodGet, srv.URL+"/me")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, "a@b.com", body["email"])
		require.Equal(t, "a@b.com", body["subject"])
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		c := newJarClient(t)
		do(t, c, http.MethodPost, srv.URL+"/login/a@b.com")
		require.Equal(t, http.StatusOK, do(t, c, http.MethodGet, srv.URL+"/me").StatusCode)

		require.Equal(t, http.StatusOK, do(t, c, http.MethodPost, srv.URL+"/logout").StatusCode)

		resp := do(t, c, http.MethodGet, srv.URL+"/me")
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, bistrosdk.ErrorCodeUnauthenticated, decodeAPIError(t, resp).Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	t.Run("grant takes effect without re-issuing", func(t *testing.T) {
		users := newFakeUsers(domain.User{ID: "1", Email: "a@b.com"})
		srv := newGuardedServer(t, newGuard(t, users))

		c := newJarClient(t)
		do(t, c, http.MethodPost, srv.URL+"/login/a@b.com")

		resp := do(t, c, http.MethodGet, srv.URL+"/admin")
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Equal(t, bistrosdk.ErrorCodeForbidden, decodeAPIError(t, resp).Code)

		users.setRole("a@b.com", domain.RoleAdmin)
		require.Equal(t, http.StatusOK, do(t, c, http.MethodGet, srv.URL+"/admin").StatusCode)

		users.setRole("a@b.com", "")
		require.Equal(t, http.StatusForbidden, do(t, c, http.MethodGet, srv.URL+"/admin").StatusCode)
	})

	t.Run("unauthenticated never reaches the lookup", func(t *testing.T) {
		users := newFakeUsers()
		srv := newGuardedServer(t, newGuard(t, users))

		resp := do(t, http.DefaultClient, http.MethodGet, srv.URL+"/admin")
		require.Equal(t, http.StatusForbidden, resp.StatusCode)
		require.Zero(t, users.readCount())
	})

	t.Run("lookup failure denies with 500", func(t *testing.T) {
		users := newFakeUsers(domain.User{ID: "1", Email: "a@b.com", Role: domain.RoleAdmin})
		users.err = errors.New("database is locked")
		srv := newGuardedServer(t, newGuard(t, users))

		c := newJarClient(t)
		do(t, c, http.MethodPost, srv.URL+"/login/a@b.com")

		resp := do(t, c, http.MethodGet, srv.URL+"/admin")
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		require.Equal(t, bistrosdk.ErrorCodeServerError, decodeAPIError(t, resp).Code)
	})
}

func TestRequireSelf(t *testing.T) {
	t.Parallel()

	srv := newGuardedServer(t, newGuard(t, newFakeUsers()))
	c := newJarClient(t)
	do(t, c, http.MethodPost, srv.URL+"/login/x@x.com")

	tests := []struct {
		name string
		path string
		want int
	}{
		{"own cart", "/carts?email=x@x.com", http.StatusOK},
		{"someone else's cart", "/carts?email=y@y.com", http.StatusForbidden},
		{"missing email", "/carts", http.StatusForbidden},
		{"own payments", "/payments/x@x.com", http.StatusOK},
		{"someone else's payments", "/payments/y@y.com", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, c, http.MethodGet, srv.URL+tt.path)
			require.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
