// Package heygen proxies the streaming-avatar provider. Every call is a
// plain request/response pass-through with generic error mapping; no retries.
package heygen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/diazdennis/monica-chatbot/pkg/logging"
)

// ErrUpstream is returned for any provider failure.
var ErrUpstream = errors.New("heygen: upstream request failed")

// Session is a live streaming-avatar session the widget connects to.
type Session struct {
	SessionID   string `json:"sessionId"`
	AccessToken string `json:"accessToken"`
	URL         string `json:"url"`
}

// SessionConfig tunes a new streaming session.
type SessionConfig struct {
	AvatarID string `json:"avatarId,omitempty"`
	VoiceID  string `json:"voiceId,omitempty"`
	Quality  string `json:"quality,omitempty"` // "low", "medium", "high"
}

// Client talks to the HeyGen API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *logging.Logger
}

// New creates a HeyGen client.
func New(baseURL, apiKey string, timeout time.Duration, logger *logging.Logger) *Client {
	if baseURL == "" {
		baseURL = "https://api.heygen.com"
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// CreateSession opens a new streaming avatar session and returns the access
// token the widget uses to connect.
func (c *Client) CreateSession(ctx context.Context, cfg SessionConfig) (*Session, error) {
	quality := cfg.Quality
	if quality == "" {
		quality = "medium"
	}

	var resp struct {
		Data struct {
			SessionID   string `json:"session_id"`
			AccessToken string `json:"access_token"`
			URL         string `json:"url"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/streaming.new", map[string]any{"quality": quality}, &resp); err != nil {
		return nil, err
	}

	return &Session{
		SessionID:   resp.Data.SessionID,
		AccessToken: resp.Data.AccessToken,
		URL:         resp.Data.URL,
	}, nil
}

// CloseSession stops a streaming session.
func (c *Client) CloseSession(ctx context.Context, sessionID string) error {
	return c.do(ctx, http.MethodPost, "/v1/streaming.stop", map[string]any{"session_id": sessionID}, nil)
}

// CreateToken issues an access token for the frontend streaming SDK.
func (c *Client) CreateToken(ctx context.Context) (string, error) {
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/streaming.create_token", map[string]any{}, &resp); err != nil {
		return "", err
	}
	if resp.Data.Token != "" {
		return resp.Data.Token, nil
	}
	return resp.Token, nil
}

// ListAvatars returns the available avatars. A provider failure degrades to
// an empty list; avatar browsing is never load-bearing.
func (c *Client) ListAvatars(ctx context.Context) []json.RawMessage {
	var resp struct {
		Data struct {
			Avatars []json.RawMessage `json:"avatars"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v2/avatars", nil, &resp); err != nil {
		c.logger.Error("failed to fetch avatars", "error", err)
		return []json.RawMessage{}
	}
	if resp.Data.Avatars == nil {
		return []json.RawMessage{}
	}
	return resp.Data.Avatars
}

// ListVoices returns the available voices, degrading to an empty list on
// provider failure.
func (c *Client) ListVoices(ctx context.Context) []json.RawMessage {
	var resp struct {
		Data struct {
			Voices []json.RawMessage `json:"voices"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v2/voices", nil, &resp); err != nil {
		c.logger.Error("failed to fetch voices", "error", err)
		return []json.RawMessage{}
	}
	if resp.Data.Voices == nil {
		return []json.RawMessage{}
	}
	return resp.Data.Voices
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("heygen: marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("heygen: build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("heygen api error",
			"status", resp.Status,
			"path", path,
			"body", string(respBody),
		)
		return fmt.Errorf("%w: %s %s returned %s", ErrUpstream, method, path, resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}
