// Package httpclient executes JSON-over-HTTP calls against a single base URL
// with per-attempt timeouts and automatic retries.
//
// # Retry behaviour
//
// A logical call makes at most MaxRetries+1 physical attempts. Transport
// failures wait BaseDelay*2^n before attempt n+1. HTTP 429 responses wait for
// the Retry-After header (seconds or an HTTP-date, one second when absent).
// Any other non-2xx response fails immediately. Per-attempt timeouts are only
// retried when RetryPolicy.RetryTimeouts is set.
//
// # Errors
//
// Terminal failures are returned as *Error, which carries a Kind and matches
// the package sentinels with errors.Is:
//
//	resp, err := client.Get(ctx, "/movie/550", httpclient.RequestOptions{})
//	switch {
//	case errors.Is(err, httpclient.ErrRateLimited):
//		// back off
//	case httpclient.IsNotFound(err):
//		// no such movie
//	}
//
// Cancelling the caller's context stops the call and returns the context
// error wrapped.
//
// # Usage
//
//	client, err := httpclient.New("https://api.themoviedb.org/3", logger,
//		httpclient.WithTimeout(10*time.Second),
//		httpclient.WithDefaultParams(map[string]string{"api_key": key}),
//		httpclient.WithRateLimit(40, 10),
//	)
//	if err != nil {
//		return err
//	}
//
//	resp, err := client.Get(ctx, "/configuration", httpclient.RequestOptions{})
//	if err != nil {
//		return err
//	}
//	cfg, err := httpclient.DecodeJSON[Configuration](resp)
//
// Every attempt is counted in the metrics package and each logical call is
// wrapped in an OpenTelemetry client span.
package httpclient
