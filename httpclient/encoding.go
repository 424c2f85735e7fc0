package httpclient

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
)

// acceptEncoding is advertised when compression is enabled
const acceptEncoding = "br, gzip"

// sensitiveParams are masked before a URL reaches logs, spans or errors
var sensitiveParams = []string{"api_key", "session_id"}

// decompress decodes raw according to the Content-Encoding header. Unknown
// or absent encodings return raw unchanged.
func decompress(encoding string, raw []byte) ([]byte, error) {
	var reader io.Reader
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "br":
		reader = brotli.NewReader(bytes.NewReader(raw))
	case "gzip":
		gz, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip body: %w", err)
		}
		defer gz.Close()
		reader = gz
	default:
		return raw, nil
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s body: %w", encoding, err)
	}
	return decoded, nil
}

// parseRetryAfter reads a Retry-After value as delay-seconds or an HTTP-date.
// Missing or unparseable values fall back to DefaultRetryAfter; dates in the
// past yield zero. The result never exceeds MaxRetryDelay.
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultRetryAfter
	}
	secs, err := strconv.ParseInt(value, 10, 64)
	switch {
	case err == nil && secs < 0:
		return 0
	case err == nil:
		if secs > int64(MaxRetryDelay/time.Second) {
			return MaxRetryDelay
		}
		return time.Duration(secs) * time.Second
	case errors.Is(err, strconv.ErrRange):
		if strings.HasPrefix(value, "-") {
			return 0
		}
		return MaxRetryDelay
	}
	if t, err := http.ParseTime(value); err == nil {
		if delta := t.Sub(now); delta > 0 {
			return min(delta, MaxRetryDelay)
		}
		return 0
	}
	return DefaultRetryAfter
}

// isAbsoluteURL reports whether path already names a full http(s) URL
func isAbsoluteURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// redactURL masks credentials carried in the query string.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.RawQuery == "" {
		return raw
	}
	query := u.Query()
	changed := false
	for _, key := range sensitiveParams {
		if query.Has(key) {
			query.Set(key, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return raw
	}
	u.RawQuery = query.Encode()
	return u.String()
}

// isJSONContentType reports whether a Content-Type declares JSON
func isJSONContentType(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
