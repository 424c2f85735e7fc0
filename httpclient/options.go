package httpclient

import (
	"net/http"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds a single physical attempt
	DefaultTimeout = 10 * time.Second
	// DefaultMaxRetries is the retry budget of the default policy
	DefaultMaxRetries = 3
	// DefaultBaseDelay is the first backoff delay of the default policy
	DefaultBaseDelay = time.Second
	// DefaultRetryAfter is used when a 429 carries no usable Retry-After
	DefaultRetryAfter = time.Second
	// MaxRetryDelay caps a single wait between attempts
	MaxRetryDelay = 5 * time.Minute
)

// RetryPolicy controls automatic retries of a logical call.
type RetryPolicy struct {
	Enabled bool
	// MaxRetries bounds retries, so a call makes at most MaxRetries+1 attempts.
	MaxRetries int
	// BaseDelay is doubled for every network retry: BaseDelay * 2^attempt.
	BaseDelay time.Duration
	// RetryTimeouts also retries attempts that hit the per-attempt deadline.
	RetryTimeouts bool
}

// DefaultRetryPolicy returns the policy used when none is configured
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Enabled:    true,
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultBaseDelay,
	}
}

// NoRetry is a policy that makes exactly one attempt
func NoRetry() RetryPolicy {
	return RetryPolicy{}
}

func (p RetryPolicy) normalize() RetryPolicy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.BaseDelay < 0 {
		p.BaseDelay = 0
	}
	return p
}

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient     *http.Client
	timeout        time.Duration
	retry          RetryPolicy
	clock          clock.Clock
	limiter        *rate.Limiter
	compression    bool
	observer       Observer
	userAgent      string
	defaultHeaders map[string]string
	defaultParams  map[string]string
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout: DefaultTimeout,
		retry:   DefaultRetryPolicy(),
		clock:   clock.New(),
	}
}

// WithHTTPClient sets the underlying HTTP client. Its own Timeout is left
// alone; per-attempt deadlines are applied through the request context.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithTimeout sets the default per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetryPolicy sets the default retry policy.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(o *clientOptions) {
		o.retry = policy.normalize()
	}
}

// WithClock sets the time source used for backoff waits and Retry-After dates.
func WithClock(c clock.Clock) Option {
	return func(o *clientOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithRateLimit paces physical attempts to rps requests per second.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *clientOptions) {
		if rps <= 0 {
			o.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithCompression advertises brotli and gzip and decodes compressed bodies.
func WithCompression(enabled bool) Option {
	return func(o *clientOptions) {
		o.compression = enabled
	}
}

// WithObserver registers a callback invoked after every attempt.
func WithObserver(obs Observer) Option {
	return func(o *clientOptions) {
		o.observer = obs
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithDefaultHeaders sets headers sent with every request.
func WithDefaultHeaders(headers map[string]string) Option {
	return func(o *clientOptions) {
		o.defaultHeaders = mergeHeaders(o.defaultHeaders, headers)
	}
}

// WithDefaultParams sets query parameters sent with every request.
func WithDefaultParams(params map[string]string) Option {
	return func(o *clientOptions) {
		o.defaultParams = mergeMaps(o.defaultParams, params)
	}
}

// mergeMaps returns a new map with overlay's entries taking precedence.
func mergeMaps(base, overlay map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

// mergeHeaders is mergeMaps with canonical header names, so overlay wins
// regardless of how either side spells a name.
func mergeHeaders(base, overlay map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	for k, v := range overlay {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	return merged
}
