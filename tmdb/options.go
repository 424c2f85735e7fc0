package tmdb

import (
	"net/http"
	"strings"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/s0up4200/tmdb-go/cache"
	"github.com/s0up4200/tmdb-go/httpclient"
)

const (
	// DefaultBaseURL is the TMDB v3 API root
	DefaultBaseURL = "https://api.themoviedb.org/3"
	// DefaultLanguage is sent when no language is configured
	DefaultLanguage = "en-US"
	// DefaultTimeout bounds a single attempt
	DefaultTimeout = 10 * time.Second
	// DefaultMaxRetries is the retry budget per logical call
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the first backoff delay
	DefaultRetryDelay = time.Second
	// PopularCacheTTL is the default TTL for popular movie listings
	PopularCacheTTL = 30 * time.Minute
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	apiKey      string
	accessToken string
	sessionID   string
	baseURL     string
	language    string
	region      string
	timeout     time.Duration
	retry       httpclient.RetryPolicy
	cacheOn     bool
	cacheSize   int
	cacheTTL    time.Duration
	rps         float64
	burst       int
	httpClient  *http.Client
	compression bool
	userAgent   string
	clock       clock.Clock
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:  DefaultBaseURL,
		language: DefaultLanguage,
		timeout:  DefaultTimeout,
		retry: httpclient.RetryPolicy{
			Enabled:    true,
			MaxRetries: DefaultMaxRetries,
			BaseDelay:  DefaultRetryDelay,
		},
		cacheOn:   true,
		cacheSize: cache.DefaultCapacity,
		cacheTTL:  cache.DefaultTTL,
		userAgent: "tmdb-go",
		clock:     clock.New(),
	}
}

// WithAPIKey authenticates with a v3 API key sent as the api_key query parameter.
func WithAPIKey(key string) Option {
	return func(o *clientOptions) {
		o.apiKey = key
	}
}

// WithAccessToken authenticates with a v4 read access token sent as a bearer header.
func WithAccessToken(token string) Option {
	return func(o *clientOptions) {
		o.accessToken = token
	}
}

// WithSessionID attaches an existing user session to every request.
func WithSessionID(id string) Option {
	return func(o *clientOptions) {
		o.sessionID = id
	}
}

// WithBaseURL overrides the API root, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithLanguage sets the default ISO 639-1 language (e.g. "de-DE").
func WithLanguage(language string) Option {
	return func(o *clientOptions) {
		if language != "" {
			o.language = language
		}
	}
}

// WithRegion sets the default ISO 3166-1 region for listings that support it.
func WithRegion(region string) Option {
	return func(o *clientOptions) {
		o.region = region
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRetry enables or disables automatic retries.
func WithRetry(enabled bool) Option {
	return func(o *clientOptions) {
		o.retry.Enabled = enabled
	}
}

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.retry.MaxRetries = retries
		}
	}
}

// WithRetryDelay sets the base delay for exponential backoff.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		if delay >= 0 {
			o.retry.BaseDelay = delay
		}
	}
}

// WithRetryTimeouts also retries attempts that hit the timeout.
func WithRetryTimeouts(enabled bool) Option {
	return func(o *clientOptions) {
		o.retry.RetryTimeouts = enabled
	}
}

// WithCache enables the response cache with the given size and default TTL.
// Non-positive values keep the defaults.
func WithCache(size int, ttl time.Duration) Option {
	return func(o *clientOptions) {
		o.cacheOn = true
		if size > 0 {
			o.cacheSize = size
		}
		if ttl > 0 {
			o.cacheTTL = ttl
		}
	}
}

// WithoutCache disables the response cache.
func WithoutCache() Option {
	return func(o *clientOptions) {
		o.cacheOn = false
	}
}

// WithRateLimit paces requests client-side. TMDB allows roughly 40 requests
// per second per IP.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *clientOptions) {
		o.rps = rps
		o.burst = burst
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithCompression requests brotli or gzip encoded responses.
func WithCompression(enabled bool) Option {
	return func(o *clientOptions) {
		o.compression = enabled
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithClock sets the time source for cache expiry and retry waits.
func WithClock(c clock.Clock) Option {
	return func(o *clientOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// CallOption adjusts a single request.
type CallOption func(*callOptions)

type callOptions struct {
	noCache     bool
	cacheTTL    time.Duration
	hasCacheTTL bool
	language    string
	params      map[string]string
}

// NoCache bypasses the response cache for one call. The response is not stored.
func NoCache() CallOption {
	return func(o *callOptions) {
		o.noCache = true
	}
}

// CacheTTL stores the response for d instead of the cache default. A zero
// or negative d stores an entry that is already expired.
func CacheTTL(d time.Duration) CallOption {
	return func(o *callOptions) {
		o.cacheTTL = d
		o.hasCacheTTL = true
	}
}

// Language overrides the client language for one call.
func Language(language string) CallOption {
	return func(o *callOptions) {
		o.language = language
	}
}

// AppendToResponse asks TMDB to embed sub-resources (e.g. "videos",
// "credits") in a details response.
func AppendToResponse(fields ...string) CallOption {
	return func(o *callOptions) {
		if len(fields) == 0 {
			return
		}
		o.setParam("append_to_response", strings.Join(fields, ","))
	}
}

// Param adds a raw query parameter to one call.
func Param(key, value string) CallOption {
	return func(o *callOptions) {
		o.setParam(key, value)
	}
}

func (o *callOptions) setParam(key, value string) {
	if o.params == nil {
		o.params = make(map[string]string)
	}
	o.params[key] = value
}

func resolveCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
