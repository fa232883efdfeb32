package paypal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// expiryMargin renews a token this long before PayPal would reject it.
const expiryMargin = time.Minute

type tokenSource struct {
	url        string
	clientID   string
	secret     string
	httpClient *http.Client
	baseDelay  time.Duration
	maxRetries int

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// Token returns a cached access token or fetches a new one. Callers block while a
// fetch is running so only one request goes out.
func (s *tokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expiresAt) {
		return s.token, nil
	}

	resp, err := retry(ctx, s.maxRetries, s.baseDelay, s.fetch)
	if err != nil {
		return "", fmt.Errorf("failed to obtain access token: %w", err)
	}

	s.token = resp.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(resp.ExpiresIn)*time.Second - expiryMargin)
	return s.token, nil
}

func (s *tokenSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expiresAt = time.Time{}
}

func (s *tokenSource) fetch(ctx context.Context) (*tokenResponse, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating token request: %w", err)
	}
	req.SetBasicAuth(s.clientID, s.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newProcessorError(resp.StatusCode, body)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return nil, fmt.Errorf("error decoding token response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("token response without access_token")
	}

	return &tok, nil
}
