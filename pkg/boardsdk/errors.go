package boardsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// APIError is a gateway error envelope ({"ok":false,"error":...}) together
// with its HTTP status.
type APIError struct {
	StatusCode int
	Message    string

	// RetryAfter is the Retry-After hint in seconds on 429 responses.
	RetryAfter int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("gateway: %d: %s", e.StatusCode, e.Message)
}

// IsRateLimited reports whether err is a 429 from the gateway.
func IsRateLimited(err error) bool { return hasStatus(err, http.StatusTooManyRequests) }

// IsUnauthorized reports whether err is a 401 from the gateway.
func IsUnauthorized(err error) bool { return hasStatus(err, http.StatusUnauthorized) }

// IsNotFound reports whether err is a 404 from the gateway.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsUnavailable reports whether the gateway could not reach its backend.
func IsUnavailable(err error) bool { return hasStatus(err, http.StatusServiceUnavailable) }

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies
// that are not an envelope fall back to the status text.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if s := resp.Header.Get("Retry-After"); s != "" {
		apiErr.RetryAfter, _ = strconv.Atoi(s)
	}

	var env Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil && env.Error != "" {
		apiErr.Message = env.Error
		return apiErr
	}

	apiErr.Message = http.StatusText(resp.StatusCode)
	return apiErr
}
