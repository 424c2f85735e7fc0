package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdb-go/httpclient"
)

func TestAuth_Authenticate(t *testing.T) {
	var validateBody, sessionBody map[string]string
	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /authentication/token/new", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		json.NewEncoder(w).Encode(RequestToken{Success: true, RequestToken: "tok-1", ExpiresAt: "2025-01-01 00:00:00 UTC"})
	})
	mux.HandleFunc("POST /authentication/token/validate_with_login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewDecoder(r.Body).Decode(&validateBody)
		json.NewEncoder(w).Encode(RequestToken{Success: true, RequestToken: "tok-1"})
	})
	mux.HandleFunc("POST /authentication/session/new", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sessionBody)
		json.NewEncoder(w).Encode(Session{Success: true, SessionID: "sess-42"})
	})
	mux.HandleFunc("GET /configuration", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-42", r.URL.Query().Get("session_id"))
		json.NewEncoder(w).Encode(APIConfiguration{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(zerolog.Nop(), WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)
	assert.False(t, client.HasSession())

	sessionID, err := client.Auth.Authenticate(context.Background(), "user", "pass")
	require.NoError(t, err)
	assert.Equal(t, "sess-42", sessionID)
	assert.True(t, client.HasSession())
	assert.Equal(t, "sess-42", client.SessionID())

	assert.Equal(t, map[string]string{"username": "user", "password": "pass", "request_token": "tok-1"}, validateBody)
	assert.Equal(t, map[string]string{"request_token": "tok-1"}, sessionBody)

	_, err = client.Configuration.API(context.Background())
	require.NoError(t, err)

	// Request tokens are never served from cache
	_, err = client.Auth.NewRequestToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), tokenCalls.Load())
}

func TestAuth_LoginRejected(t *testing.T) {
	var sessionCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /authentication/token/new", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(RequestToken{Success: true, RequestToken: "tok-1"})
	})
	mux.HandleFunc("POST /authentication/token/validate_with_login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success":        false,
			"status_code":    30,
			"status_message": "Invalid username and/or password: You did not provide a valid login.",
		})
	})
	mux.HandleFunc("POST /authentication/session/new", func(w http.ResponseWriter, r *http.Request) {
		sessionCalls.Add(1)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(zerolog.Nop(), WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Auth.Authenticate(context.Background(), "user", "wrong")
	require.Error(t, err)
	assert.True(t, httpclient.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "failed to validate login")
	assert.Contains(t, err.Error(), "Invalid username and/or password")
	assert.False(t, client.HasSession())
	assert.Equal(t, int32(0), sessionCalls.Load())
}

func TestAuth_PostIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewClient(zerolog.Nop(), WithAPIKey("k"), WithBaseURL(server.URL), WithMaxRetries(3))
	require.NoError(t, err)

	_, err = client.Auth.CreateSession(context.Background(), "tok")
	require.Error(t, err)
	assert.ErrorIs(t, err, httpclient.ErrRateLimited)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAuth_UnsuccessfulPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Session{Success: false})
	}))
	defer server.Close()

	client, err := NewClient(zerolog.Nop(), WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Auth.CreateSession(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, err = client.Auth.ValidateWithLogin(context.Background(), "", "", "tok")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
