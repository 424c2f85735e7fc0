package httpclient

import (
	"encoding/json"
	"net/http"
)

// Response is a fully read 2xx response
type Response struct {
	Status     int
	StatusText string
	Header     http.Header
	Method     string
	URL        string
	// Body is the raw (decompressed) response body.
	Body []byte
	// JSON is true when the server declared application/json. Such bodies
	// have already been validated.
	JSON bool
}

// Text returns the body as a string
func (r *Response) Text() string {
	return string(r.Body)
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &Error{
			Kind:       KindDecode,
			Method:     r.Method,
			URL:        r.URL,
			Status:     r.Status,
			StatusText: r.StatusText,
			Message:    "failed to parse response",
			Body:       r.Body,
			Err:        err,
		}
	}
	return nil
}

// DecodeJSON decodes the response body into a new T.
func DecodeJSON[T any](r *Response) (T, error) {
	var out T
	if err := r.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
