package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/s0up4200/tmdb-go/metrics"
)

const tracerName = "github.com/s0up4200/tmdb-go/httpclient"

// AttemptInfo describes a single attempt outcome.
type AttemptInfo struct {
	Attempt int
	Method  string
	URL     string
	Status  int
	Err     error
	// Wait is the delay scheduled before the next attempt, zero if none.
	Wait time.Duration
}

// Observer receives attempt telemetry.
type Observer func(info AttemptInfo)

// RequestOptions are per-call settings layered over the client defaults.
type RequestOptions struct {
	Params  map[string]string
	Headers map[string]string
	// Body is marshalled as JSON when non-nil.
	Body    any
	Timeout time.Duration
	Retry   *RetryPolicy
}

// Client executes logical HTTP calls with per-attempt timeouts and retries
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      zerolog.Logger
	clock       clock.Clock
	limiter     *rate.Limiter
	tracer      trace.Tracer
	observer    Observer
	userAgent   string
	compression bool
	timeout     time.Duration
	retry       RetryPolicy

	mu             sync.RWMutex
	defaultHeaders map[string]string
	defaultParams  map[string]string
}

// New creates a client rooted at baseURL
func New(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", ErrInvalidConfig, baseURL)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		logger:         logger.With().Str("component", "httpclient").Logger(),
		clock:          o.clock,
		limiter:        o.limiter,
		tracer:         otel.Tracer(tracerName),
		observer:       o.observer,
		userAgent:      o.userAgent,
		compression:    o.compression,
		timeout:        o.timeout,
		retry:          o.retry,
		defaultHeaders: mergeHeaders(nil, o.defaultHeaders),
		defaultParams:  mergeMaps(nil, o.defaultParams),
	}, nil
}

// BaseURL returns the URL relative paths are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetDefaultHeaders merges headers into the defaults sent with every request.
func (c *Client) SetDefaultHeaders(headers map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultHeaders = mergeHeaders(c.defaultHeaders, headers)
}

// SetDefaultParams merges params into the defaults sent with every request.
func (c *Client) SetDefaultParams(params map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultParams = mergeMaps(c.defaultParams, params)
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodGet, path, opts)
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPost, path, opts)
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPut, path, opts)
}

// Patch performs a PATCH request
func (c *Client) Patch(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, path, opts)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, opts RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, path, opts)
}

// Do performs one logical call. Network failures are retried with
// exponential backoff and 429 responses after their Retry-After delay, both
// within the retry budget. Other non-2xx responses fail immediately.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions) (resp *Response, err error) {
	reqURL, err := c.buildURL(path, c.mergedParams(opts.Params))
	if err != nil {
		return nil, err
	}
	safeURL := redactURL(reqURL)

	headers := c.mergedHeaders(opts.Headers)
	var body []byte
	if opts.Body != nil {
		body, err = json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		if _, ok := headers["Content-Type"]; !ok {
			headers["Content-Type"] = "application/json"
		}
	}

	policy := c.retry
	if opts.Retry != nil {
		policy = opts.Retry.normalize()
	}
	timeout := c.timeout
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	ctx, span := c.tracer.Start(ctx, "HTTP "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.full", safeURL),
		),
	)
	start := c.clock.Now()
	defer func() {
		result := "success"
		if err != nil {
			result = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("http.response.status_code", resp.Status))
		}
		metrics.RequestDuration.WithLabelValues(method, result).Observe(c.clock.Since(start).Seconds())
		span.End()
	}()

	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if werr := c.limiter.Wait(ctx); werr != nil {
				return nil, fmt.Errorf("%s %s: rate limiter: %w", method, safeURL, werr)
			}
		}

		resp, err = c.attempt(ctx, method, reqURL, safeURL, headers, body, timeout)

		var reqErr *Error
		if err != nil && !errors.As(err, &reqErr) {
			// Caller cancellation or a request that could not be built
			c.notify(AttemptInfo{Attempt: attempt, Method: method, URL: safeURL, Err: err})
			return nil, err
		}

		if err == nil {
			switch {
			case resp.Status >= 200 && resp.Status < 300:
				if resp.JSON && len(resp.Body) > 0 && !json.Valid(resp.Body) {
					reqErr = &Error{
						Kind:       KindDecode,
						Method:     method,
						URL:        safeURL,
						Status:     resp.Status,
						StatusText: resp.StatusText,
						Message:    "invalid JSON in response body",
						Body:       resp.Body,
					}
					break
				}
				metrics.HTTPAttempts.WithLabelValues("success").Inc()
				c.notify(AttemptInfo{Attempt: attempt, Method: method, URL: safeURL, Status: resp.Status})
				if attempt > 0 {
					c.logger.Debug().
						Str("method", method).
						Str("url", safeURL).
						Int("attempts", attempt+1).
						Msg("Request succeeded after retries")
				}
				return resp, nil
			case resp.Status == http.StatusTooManyRequests:
				reqErr = &Error{
					Kind:       KindRateLimit,
					Method:     method,
					URL:        safeURL,
					Status:     resp.Status,
					StatusText: resp.StatusText,
					Message:    apiMessage(resp.Body, resp.StatusText),
					RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.clock.Now()),
					Body:       resp.Body,
				}
			default:
				reqErr = &Error{
					Kind:       KindHTTP,
					Method:     method,
					URL:        safeURL,
					Status:     resp.Status,
					StatusText: resp.StatusText,
					Message:    apiMessage(resp.Body, resp.StatusText),
					Body:       resp.Body,
				}
			}
		}

		reqErr.Attempts = attempt + 1
		metrics.HTTPAttempts.WithLabelValues(outcomeLabel(reqErr.Kind)).Inc()

		wait, retry := c.retryDelay(policy, attempt, reqErr)
		info := AttemptInfo{Attempt: attempt, Method: method, URL: safeURL, Status: reqErr.Status, Err: reqErr}
		if !retry {
			c.notify(info)
			c.logger.Debug().
				Err(reqErr).
				Str("method", method).
				Str("url", safeURL).
				Int("attempts", attempt+1).
				Msg("Request failed")
			return nil, reqErr
		}

		info.Wait = wait
		c.notify(info)
		metrics.HTTPRetries.WithLabelValues(reqErr.Kind.String()).Inc()
		metrics.RetryWaits.WithLabelValues(reqErr.Kind.String()).Observe(wait.Seconds())
		c.logger.Warn().
			Err(reqErr).
			Str("method", method).
			Str("url", safeURL).
			Int("attempt", attempt+1).
			Dur("wait", wait).
			Msg("Retrying request")

		if serr := c.sleep(ctx, wait); serr != nil {
			return nil, fmt.Errorf("%s %s: %w", method, safeURL, serr)
		}
	}
}

// attempt makes one physical request and reads its body within the same
// deadline. Transport failures come back as *Error; cancellation of the
// caller's context comes back as a wrapped context error.
func (c *Client) attempt(ctx context.Context, method, reqURL, safeURL string, headers map[string]string, body []byte, timeout time.Duration) (*Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.compression {
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}

	c.logger.Trace().
		Str("method", method).
		Str("url", safeURL).
		Msg("Making request")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, attemptCtx, method, safeURL, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.transportError(ctx, attemptCtx, method, safeURL, err)
	}

	statusText := http.StatusText(httpResp.StatusCode)
	if c.compression {
		raw, err = decompress(httpResp.Header.Get("Content-Encoding"), raw)
		if err != nil {
			return nil, &Error{
				Kind:       KindDecode,
				Method:     method,
				URL:        safeURL,
				Status:     httpResp.StatusCode,
				StatusText: statusText,
				Message:    "failed to decompress response body",
				Err:        err,
			}
		}
	}

	return &Response{
		Status:     httpResp.StatusCode,
		StatusText: statusText,
		Header:     httpResp.Header,
		Method:     method,
		URL:        safeURL,
		Body:       raw,
		JSON:       isJSONContentType(httpResp.Header.Get("Content-Type")),
	}, nil
}

// transportError classifies a failure that produced no usable response.
func (c *Client) transportError(ctx, attemptCtx context.Context, method, safeURL string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s %s: %w", method, safeURL, ctxErr)
	}
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return &Error{
			Kind:       KindTimeout,
			Method:     method,
			URL:        safeURL,
			Status:     http.StatusRequestTimeout,
			StatusText: http.StatusText(http.StatusRequestTimeout),
			Message:    "Request timeout",
			Err:        err,
		}
	}
	return &Error{
		Kind:    KindNetwork,
		Method:  method,
		URL:     safeURL,
		Message: "network error",
		Err:     err,
	}
}

// retryDelay decides whether a failed attempt is retried and how long to
// wait first.
func (c *Client) retryDelay(policy RetryPolicy, attempt int, reqErr *Error) (time.Duration, bool) {
	if !policy.Enabled || attempt >= policy.MaxRetries {
		return 0, false
	}
	switch reqErr.Kind {
	case KindNetwork:
		return backoff(policy.BaseDelay, attempt), true
	case KindTimeout:
		if policy.RetryTimeouts {
			return backoff(policy.BaseDelay, attempt), true
		}
	case KindRateLimit:
		return reqErr.RetryAfter, true
	}
	return 0, false
}

// backoff returns base * 2^attempt, capped at MaxRetryDelay
func backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30
	}
	if base > MaxRetryDelay>>uint(attempt) {
		return MaxRetryDelay
	}
	return base << uint(attempt)
}

// sleep waits for d or until ctx is done.
func (c *Client) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := c.clock.Timer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) notify(info AttemptInfo) {
	if c.observer != nil {
		c.observer(info)
	}
}

// buildURL resolves path against the base URL and appends params sorted by key.
func (c *Client) buildURL(path string, params map[string]string) (string, error) {
	target := path
	if !isAbsoluteURL(path) {
		if path != "" && !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		target = c.baseURL + path
	}
	if _, err := url.Parse(target); err != nil {
		return "", fmt.Errorf("invalid request URL %q: %w", target, err)
	}
	if len(params) == 0 {
		return target, nil
	}

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + values.Encode(), nil
}

func (c *Client) mergedParams(params map[string]string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mergeMaps(c.defaultParams, params)
}

func (c *Client) mergedHeaders(headers map[string]string) map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return mergeHeaders(c.defaultHeaders, headers)
}

func outcomeLabel(kind Kind) string {
	switch kind {
	case KindNetwork:
		return "network_error"
	case KindTimeout:
		return "timeout"
	case KindRateLimit:
		return "rate_limited"
	case KindDecode:
		return "decode_error"
	default:
		return "http_error"
	}
}
