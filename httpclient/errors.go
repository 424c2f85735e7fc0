package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Kind classifies a failed request
type Kind int

const (
	// KindNetwork is a transport failure where no usable response arrived
	KindNetwork Kind = iota + 1
	// KindTimeout means the per-attempt deadline elapsed
	KindTimeout
	// KindRateLimit is an HTTP 429 response that was not (or no longer) retried
	KindRateLimit
	// KindHTTP is any other non-2xx response
	KindHTTP
	// KindDecode means a response body could not be parsed
	KindDecode
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindRateLimit:
		return "rate_limit"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Sentinel errors matched by errors.Is against an *Error of the same kind
var (
	// ErrNetwork indicates a transport failure
	ErrNetwork = errors.New("network error")
	// ErrTimeout indicates the request timed out
	ErrTimeout = errors.New("request timeout")
	// ErrRateLimited indicates the API answered 429
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrHTTP indicates a non-2xx response
	ErrHTTP = errors.New("http error")
	// ErrDecode indicates an unparseable response body
	ErrDecode = errors.New("decode error")
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid http client configuration")
)

// Error is returned for every terminal request failure
type Error struct {
	Kind       Kind
	Method     string
	URL        string
	Status     int
	StatusText string
	// Message is the API's status_message when present, otherwise the status text.
	Message string
	// RetryAfter is the server-requested wait of the last 429 response.
	RetryAfter time.Duration
	// Body holds the raw response body, if any was read.
	Body     []byte
	Attempts int
	Err      error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch e.Kind {
	case KindNetwork:
		if e.Err != nil {
			return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
		}
		return fmt.Sprintf("network error: %s %s", e.Method, e.URL)
	case KindTimeout:
		return fmt.Sprintf("request timeout: %s %s", e.Method, e.URL)
	case KindRateLimit:
		return fmt.Sprintf("rate limit exceeded: %s", e.Message)
	case KindDecode:
		if e.Err != nil {
			return fmt.Sprintf("decode error: %s %s: %v", e.Method, e.URL, e.Err)
		}
		return fmt.Sprintf("decode error: %s %s", e.Method, e.URL)
	default:
		return fmt.Sprintf("HTTP error %d: %s", e.Status, e.Message)
	}
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrTimeout:
		return e.Kind == KindTimeout
	case ErrRateLimited:
		return e.Kind == KindRateLimit
	case ErrHTTP:
		return e.Kind == KindHTTP || e.Kind == KindRateLimit
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

// IsNotFound checks if the error indicates a not found response
func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *Error) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// IsNotFound reports whether err is an *Error carrying a 404
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.IsNotFound()
}

// IsUnauthorized reports whether err is an *Error carrying a 401 or 403
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.IsUnauthorized()
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// apiMessage extracts TMDB's status_message from an error body.
func apiMessage(body []byte, fallback string) string {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil && payload.StatusMessage != "" {
		return payload.StatusMessage
	}
	return fallback
}
