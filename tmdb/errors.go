package tmdb

import (
	"errors"
	"fmt"

	"github.com/s0up4200/tmdb-go/httpclient"
)

// Common errors
var (
	// ErrMissingCredentials indicates neither an API key nor an access token was configured
	ErrMissingCredentials = errors.New("either an API key or an access token must be provided")
	// ErrInvalidArgument indicates a caller-supplied value was rejected before any request was made
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAuthenticationFailed indicates TMDB rejected a step of the login flow
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Request failures, matched with errors.Is against any error returned by a service
var (
	ErrNetwork     = httpclient.ErrNetwork
	ErrTimeout     = httpclient.ErrTimeout
	ErrRateLimited = httpclient.ErrRateLimited
	ErrHTTP        = httpclient.ErrHTTP
	ErrDecode      = httpclient.ErrDecode
)

// IsNotFound reports whether err is a 404 from TMDB
func IsNotFound(err error) bool {
	return httpclient.IsNotFound(err)
}

// IsUnauthorized reports whether err is a 401 from TMDB
func IsUnauthorized(err error) bool {
	return httpclient.IsUnauthorized(err)
}

// StatusCode returns the HTTP status carried by err, or 0
func StatusCode(err error) int {
	return httpclient.StatusCode(err)
}

// BatchError records a failed lookup within a batch operation
type BatchError struct {
	ID  int
	Err error
}

// Error implements the error interface
func (e BatchError) Error() string {
	return fmt.Sprintf("id %d: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error
func (e BatchError) Unwrap() error {
	return e.Err
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
