package bistrosdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/bistro/pkg/httpx"
)

// Error codes carried in the "error" field of every failure response.
const (
	ErrorCodeUnauthenticated   = "unauthenticated"
	ErrorCodeInvalidCredential = "invalid_credential"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeServerError       = "server_error"
	ErrorCodePaymentFailed     = "payment_failed"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
)

// APIError is the error body returned by the API. The server writes it with
// WriteError and the client decodes it back, so both sides share one type.
type APIError struct {
	StatusCode  int    `json:"-"`
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on status and code so callers can errors.Is against the
// predefined values regardless of description.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Code == t.Code
}

// WriteError writes e as a JSON response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// WithDescription returns a copy of e with a more specific description.
func (e *APIError) WithDescription(desc string) *APIError {
	cp := *e
	cp.Description = desc
	return &cp
}

var (
	// ErrUnauthenticated is returned when no credential was presented.
	ErrUnauthenticated = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeUnauthenticated,
		Description: "no credential presented",
	}

	// ErrInvalidCredential is returned when the credential failed signature or expiry checks.
	ErrInvalidCredential = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredential,
		Description: "the credential is invalid or expired",
	}

	// ErrForbidden is returned when the caller is authenticated but may not touch the resource.
	ErrForbidden = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeForbidden,
		Description: "forbidden access",
	}

	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required fields",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "resource not found",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}

	// ErrPaymentFailed is returned when the payment processor rejected or failed the request.
	ErrPaymentFailed = &APIError{
		StatusCode:  http.StatusBadGateway,
		Code:        ErrorCodePaymentFailed,
		Description: "payment processor error",
	}
)

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = http.StatusText(resp.StatusCode)
		apiErr.Description = string(body)
	}
	return apiErr
}
