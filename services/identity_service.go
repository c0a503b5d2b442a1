package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SessionData is the payload returned by the identity provider when a
// one-time session id is exchanged.
type SessionData struct {
	ID           string  `json:"id"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture"`
	SessionToken string  `json:"session_token"`
}

// IdentityService exchanges one-time session ids against the external
// identity provider. It never mints tokens itself.
type IdentityService struct {
	sessionDataURL string
	client         *http.Client
}

func NewIdentityService(sessionDataURL string) *IdentityService {
	return &IdentityService{
		sessionDataURL: sessionDataURL,
		client:         &http.Client{Timeout: 10 * time.Second},
	}
}

// ExchangeSession resolves a one-time session id into user data plus the
// session token the client must present from then on.
func (s *IdentityService) ExchangeSession(sessionID string) (*SessionData, error) {
	req, err := http.NewRequest(http.MethodGet, s.sessionDataURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build session-data request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call identity provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read session-data response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity provider error %d: %s", resp.StatusCode, string(body))
	}

	var data SessionData
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to parse session-data JSON: %w", err)
	}
	if data.Email == "" || data.SessionToken == "" {
		return nil, fmt.Errorf("identity provider returned incomplete session data")
	}
	return &data, nil
}
