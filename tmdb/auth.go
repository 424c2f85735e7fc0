package tmdb

import (
	"context"
	"fmt"
)

// AuthService handles the user login flow
type AuthService service

// RequestToken is a short-lived token a user authorizes
type RequestToken struct {
	Success      bool   `json:"success"`
	ExpiresAt    string `json:"expires_at"`
	RequestToken string `json:"request_token"`
}

// Session is returned when a request token is exchanged
type Session struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
}

// NewRequestToken creates an unauthorized request token. It is never cached.
func (s *AuthService) NewRequestToken(ctx context.Context) (*RequestToken, error) {
	token, err := get[RequestToken](ctx, s.client, EndpointAuthToken, nil, NoCache())
	if err != nil {
		return nil, fmt.Errorf("failed to create request token: %w", err)
	}
	if !token.Success || token.RequestToken == "" {
		return nil, fmt.Errorf("%w: request token was not issued", ErrAuthenticationFailed)
	}
	return token, nil
}

// ValidateWithLogin authorizes a request token with user credentials.
func (s *AuthService) ValidateWithLogin(ctx context.Context, username, password, requestToken string) (*RequestToken, error) {
	if username == "" || password == "" {
		return nil, invalidArgument("username and password are required")
	}
	body := map[string]string{
		"username":      username,
		"password":      password,
		"request_token": requestToken,
	}
	token, err := post[RequestToken](ctx, s.client, EndpointAuthValidateToken, body)
	if err != nil {
		return nil, fmt.Errorf("failed to validate login: %w", err)
	}
	if !token.Success {
		return nil, fmt.Errorf("%w: login was rejected", ErrAuthenticationFailed)
	}
	return token, nil
}

// CreateSession exchanges an authorized request token for a session ID.
func (s *AuthService) CreateSession(ctx context.Context, requestToken string) (*Session, error) {
	session, err := post[Session](ctx, s.client, EndpointAuthSession, map[string]string{
		"request_token": requestToken,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if !session.Success || session.SessionID == "" {
		return nil, fmt.Errorf("%w: session was not created", ErrAuthenticationFailed)
	}
	return session, nil
}

// Authenticate runs the full login flow and attaches the resulting session
// to the client.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	token, err := s.NewRequestToken(ctx)
	if err != nil {
		return "", err
	}

	validated, err := s.ValidateWithLogin(ctx, username, password, token.RequestToken)
	if err != nil {
		return "", err
	}

	session, err := s.CreateSession(ctx, validated.RequestToken)
	if err != nil {
		return "", err
	}

	s.client.SetSessionID(session.SessionID)
	s.client.logger.Debug().Msg("Authenticated TMDB session")

	return session.SessionID, nil
}
