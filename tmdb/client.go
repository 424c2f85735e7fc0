package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/tmdb-go/cache"
	"github.com/s0up4200/tmdb-go/httpclient"
	"github.com/s0up4200/tmdb-go/metrics"
)

// transportParams never take part in cache keys
var transportParams = map[string]struct{}{
	"api_key":    {},
	"session_id": {},
}

// Client is a TMDB v3 API client
type Client struct {
	http     *httpclient.Client
	cache    *cache.Cache[[]byte]
	logger   zerolog.Logger
	language string
	region   string

	sessionMu sync.RWMutex
	sessionID string

	// reportedEntries is this client's share of metrics.CacheEntries
	entriesMu       sync.Mutex
	reportedEntries int

	Movies        *MoviesService
	TV            *TVService
	People        *PeopleService
	Search        *SearchService
	Discover      *DiscoverService
	Trending      *TrendingService
	Configuration *ConfigurationService
	Auth          *AuthService
}

type service struct {
	client *Client
}

// NewClient creates a new TMDB client. An API key or an access token is required.
func NewClient(logger zerolog.Logger, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.apiKey == "" && o.accessToken == "" {
		return nil, ErrMissingCredentials
	}

	httpOpts := []httpclient.Option{
		httpclient.WithTimeout(o.timeout),
		httpclient.WithRetryPolicy(o.retry),
		httpclient.WithClock(o.clock),
		httpclient.WithCompression(o.compression),
		httpclient.WithUserAgent(o.userAgent),
	}
	if o.httpClient != nil {
		httpOpts = append(httpOpts, httpclient.WithHTTPClient(o.httpClient))
	}
	if o.rps > 0 {
		httpOpts = append(httpOpts, httpclient.WithRateLimit(o.rps, o.burst))
	}
	if o.apiKey != "" {
		httpOpts = append(httpOpts, httpclient.WithDefaultParams(map[string]string{"api_key": o.apiKey}))
	}
	if o.accessToken != "" {
		httpOpts = append(httpOpts, httpclient.WithDefaultHeaders(map[string]string{
			"Authorization": "Bearer " + o.accessToken,
		}))
	}

	executor, err := httpclient.New(o.baseURL, logger, httpOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create http client: %w", err)
	}

	c := &Client{
		http:     executor,
		logger:   logger.With().Str("component", "tmdb").Logger(),
		language: o.language,
		region:   o.region,
	}
	if o.cacheOn {
		c.cache = cache.New[[]byte](o.cacheSize, o.cacheTTL, cache.WithClock(o.clock))
	}
	if o.sessionID != "" {
		c.SetSessionID(o.sessionID)
	}

	base := service{client: c}
	c.Movies = (*MoviesService)(&base)
	c.TV = (*TVService)(&base)
	c.People = (*PeopleService)(&base)
	c.Search = (*SearchService)(&base)
	c.Discover = (*DiscoverService)(&base)
	c.Trending = (*TrendingService)(&base)
	c.Configuration = (*ConfigurationService)(&base)
	c.Auth = (*AuthService)(&base)

	return c, nil
}

// Language returns the default request language
func (c *Client) Language() string {
	return c.language
}

// SetSessionID attaches a user session to every subsequent request.
func (c *Client) SetSessionID(id string) {
	c.sessionMu.Lock()
	c.sessionID = id
	c.sessionMu.Unlock()

	c.http.SetDefaultParams(map[string]string{"session_id": id})
}

// SessionID returns the current user session, if any
func (c *Client) SessionID() string {
	c.sessionMu.RLock()
	defer c.sessionMu.RUnlock()
	return c.sessionID
}

// HasSession reports whether a user session is attached
func (c *Client) HasSession() bool {
	return c.SessionID() != ""
}

// ClearCache drops every cached response
func (c *Client) ClearCache() {
	if c.cache == nil {
		return
	}
	c.cache.Clear()
	c.reportCacheEntries()
}

// reportCacheEntries moves the shared gauge by the change in this client's
// cache size, so the gauge is the total across clients.
func (c *Client) reportCacheEntries() {
	c.entriesMu.Lock()
	defer c.entriesMu.Unlock()

	n := c.cache.Len()
	metrics.CacheEntries.Add(float64(n - c.reportedEntries))
	c.reportedEntries = n
}

// CacheStats returns the response cache counters. The zero value is
// returned when caching is disabled.
func (c *Client) CacheStats() cache.Stats {
	if c.cache == nil {
		return cache.Stats{}
	}
	return c.cache.Stats()
}

// CacheEnabled reports whether responses are cached
func (c *Client) CacheEnabled() bool {
	return c.cache != nil
}

// get performs a cached GET and decodes the JSON body into T. The effective
// language is added to params and is part of the cache key.
func get[T any](ctx context.Context, c *Client, path string, params map[string]string, opts ...CallOption) (*T, error) {
	o := resolveCallOptions(opts)
	params = c.requestParams(params, o)

	useCache := c.cache != nil && !o.noCache
	var key string
	if useCache {
		key = cacheKey(path, params)
		if raw, ok := c.cache.Get(key); ok {
			var out T
			if err := decode(raw, &out); err == nil {
				metrics.CacheLookups.WithLabelValues("hit").Inc()
				c.logger.Trace().Str("key", key).Msg("Cache hit")
				return &out, nil
			}
			c.cache.Delete(key)
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	} else {
		metrics.CacheLookups.WithLabelValues("bypass").Inc()
	}

	resp, err := c.http.Get(ctx, path, httpclient.RequestOptions{Params: params})
	if err != nil {
		return nil, err
	}

	out, err := httpclient.DecodeJSON[T](resp)
	if err != nil {
		return nil, err
	}

	if useCache {
		stored := make([]byte, len(resp.Body))
		copy(stored, resp.Body)
		if o.hasCacheTTL {
			c.cache.SetWithTTL(key, stored, o.cacheTTL)
		} else {
			c.cache.Set(key, stored)
		}
		c.reportCacheEntries()
	}

	return &out, nil
}

// post sends body as JSON and decodes the response. It is never cached and
// never retried automatically.
func post[T any](ctx context.Context, c *Client, path string, body any, opts ...CallOption) (*T, error) {
	o := resolveCallOptions(opts)
	noRetry := httpclient.NoRetry()

	resp, err := c.http.Post(ctx, path, httpclient.RequestOptions{
		Params: c.requestParams(nil, o),
		Body:   body,
		Retry:  &noRetry,
	})
	if err != nil {
		return nil, err
	}

	out, err := httpclient.DecodeJSON[T](resp)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// requestParams copies params, adds per-call extras and fills in the
// effective language.
func (c *Client) requestParams(params map[string]string, o callOptions) map[string]string {
	out := make(map[string]string, len(params)+len(o.params)+1)
	for k, v := range params {
		out[k] = v
	}
	for k, v := range o.params {
		out[k] = v
	}
	if _, ok := out["language"]; !ok {
		out["language"] = c.language
		if o.language != "" {
			out["language"] = o.language
		}
	}
	return out
}

// cacheKey is the path plus the sorted query, minus credentials.
func cacheKey(path string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		if _, skip := transportParams[k]; skip {
			continue
		}
		values.Set(k, v)
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func decode(raw []byte, v any) error {
	resp := httpclient.Response{Body: raw}
	return resp.Decode(v)
}

// paramBuilder collects optional query parameters, skipping zero values.
type paramBuilder map[string]string

func (p paramBuilder) setString(key, value string) paramBuilder {
	if value != "" {
		p[key] = value
	}
	return p
}

func (p paramBuilder) setInt(key string, value int) paramBuilder {
	if value != 0 {
		p[key] = strconv.Itoa(value)
	}
	return p
}

func (p paramBuilder) setFloat(key string, value float64) paramBuilder {
	if value != 0 {
		p[key] = strconv.FormatFloat(value, 'f', -1, 64)
	}
	return p
}

func (p paramBuilder) setBool(key string, value *bool) paramBuilder {
	if value != nil {
		p[key] = strconv.FormatBool(*value)
	}
	return p
}

func (p paramBuilder) setInts(key string, values []int) paramBuilder {
	if len(values) > 0 {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = strconv.Itoa(v)
		}
		p[key] = strings.Join(parts, ",")
	}
	return p
}

// Bool returns a pointer to b, for optional boolean filters.
func Bool(b bool) *bool {
	return &b
}

func pageParams(page int) paramBuilder {
	return paramBuilder{}.setInt("page", page)
}
