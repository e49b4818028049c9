package bistrosdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
	"strings"
	"time"
)

// Client talks to the Bistro API. It keeps the session cookie in a jar, so
// SignIn on one Client authenticates every later call made through it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client with its own cookie jar.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil) // only errors on a bad PublicSuffixList
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil). Any status not listed in want is returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, in, out any, want ...int) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if !slices.Contains(want, resp.StatusCode) {
		if err := parseErrorResponse(resp, raw); err != nil {
			return err
		}
		return &APIError{StatusCode: resp.StatusCode, Code: "unexpected_status", Description: string(raw)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// SignIn asks the server to issue a session cookie for email.
func (c *Client) SignIn(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/jwt", TokenRequest{Email: email}, nil, http.StatusOK)
}

// SignOut clears the session cookie.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil, http.StatusOK)
}

// CreateUser registers a user. Already-registered emails come back with a
// nil InsertedID and no error.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (CreateUserResponse, error) {
	var out CreateUserResponse
	err := c.do(ctx, http.MethodPost, "/users", req, &out, http.StatusCreated, http.StatusOK)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	err := c.do(ctx, http.MethodGet, "/users", nil, &out, http.StatusOK)
	return out, err
}

// IsAdmin reports whether email holds the admin role. The server only
// answers for the signed-in caller's own email.
func (c *Client) IsAdmin(ctx context.Context, email string) (bool, error) {
	var out AdminStatusResponse
	err := c.do(ctx, http.MethodGet, "/users/admin/"+url.PathEscape(email), nil, &out, http.StatusOK)
	return out.Admin, err
}

func (c *Client) GrantAdmin(ctx context.Context, userID string) (ModifiedResponse, error) {
	var out ModifiedResponse
	err := c.do(ctx, http.MethodPatch, "/users/admin/"+url.PathEscape(userID), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) RevokeAdmin(ctx context.Context, userID string) (ModifiedResponse, error) {
	var out ModifiedResponse
	err := c.do(ctx, http.MethodDelete, "/users/admin/"+url.PathEscape(userID), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, userID string) (DeletedResponse, error) {
	var out DeletedResponse
	err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(userID), nil, &out, http.StatusOK)
	return out, err
}

// ListMenu lists menu items, optionally filtered by category.
func (c *Client) ListMenu(ctx context.Context, category string) ([]MenuItem, error) {
	path := "/menu"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out []MenuItem
	err := c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) MenuCount(ctx context.Context) (int64, error) {
	var out CountResponse
	err := c.do(ctx, http.MethodGet, "/menuCount", nil, &out, http.StatusOK)
	return out.Count, err
}

func (c *Client) GetMenuItem(ctx context.Context, id string) (MenuItem, error) {
	var out MenuItem
	err := c.do(ctx, http.MethodGet, "/menu/"+url.PathEscape(id), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) AddMenuItem(ctx context.Context, in MenuItemInput) (InsertedResponse, error) {
	var out InsertedResponse
	err := c.do(ctx, http.MethodPost, "/menu", in, &out, http.StatusCreated)
	return out, err
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, in MenuItemInput) (ModifiedResponse, error) {
	var out ModifiedResponse
	err := c.do(ctx, http.MethodPatch, "/menu/"+url.PathEscape(id), in, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) (DeletedResponse, error) {
	var out DeletedResponse
	err := c.do(ctx, http.MethodDelete, "/menu/"+url.PathEscape(id), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) ListReviews(ctx context.Context) ([]Review, error) {
	var out []Review
	err := c.do(ctx, http.MethodGet, "/reviews", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) AddReview(ctx context.Context, in ReviewInput) (InsertedResponse, error) {
	var out InsertedResponse
	err := c.do(ctx, http.MethodPost, "/reviews", in, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListCart(ctx context.Context, email string) ([]CartItem, error) {
	var out []CartItem
	err := c.do(ctx, http.MethodGet, "/carts?email="+url.QueryEscape(email), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) AddToCart(ctx context.Context, in CartItemInput) (InsertedResponse, error) {
	var out InsertedResponse
	err := c.do(ctx, http.MethodPost, "/carts", in, &out, http.StatusCreated)
	return out, err
}

func (c *Client) DeleteCartItem(ctx context.Context, id string) (DeletedResponse, error) {
	var out DeletedResponse
	err := c.do(ctx, http.MethodDelete, "/carts/"+url.PathEscape(id), nil, &out, http.StatusOK)
	return out, err
}

// CreatePaymentIntent returns the processor client secret for a checkout of price dollars.
func (c *Client) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	var out PaymentIntentResponse
	err := c.do(ctx, http.MethodPost, "/create-payment-intent", PaymentIntentRequest{Price: price}, &out, http.StatusOK)
	return out.ClientSecret, err
}

func (c *Client) RecordPayment(ctx context.Context, in PaymentInput) (PaymentResponse, error) {
	var out PaymentResponse
	err := c.do(ctx, http.MethodPost, "/payments", in, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListPayments(ctx context.Context, email string) ([]Payment, error) {
	var out []Payment
	err := c.do(ctx, http.MethodGet, "/payments/"+url.PathEscape(email), nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) AdminStats(ctx context.Context) (AdminStats, error) {
	var out AdminStats
	err := c.do(ctx, http.MethodGet, "/admin-stats", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) OrderStats(ctx context.Context) ([]CategoryStats, error) {
	var out []CategoryStats
	err := c.do(ctx, http.MethodGet, "/order-stats", nil, &out, http.StatusOK)
	return out, err
}

// GetLiveness checks the liveness endpoint.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK)
	return out, err
}

// GetReadiness checks the readiness endpoint, including the database check.
func (c *Client) GetReadiness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK)
	return out, err
}
