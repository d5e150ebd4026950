// Package wordnik is a small client for the Wordnik word-data API.
//
// A Client is created with New and passed to callers explicitly. Every
// operation issues exactly one HTTP request and never retries.
package wordnik

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://api.wordnik.com/api"
	DefaultTimeout = 10 * time.Second
)

// Config configures a Client. Username and Password are optional; when both
// are set New authenticates and the client can use list operations.
type Config struct {
	APIKey     string
	Username   string
	Password   string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client talks to the word-data API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	authToken  string
	userID     int64
}

// New builds a client. A missing API key returns ErrInvalidAPIKey. When
// credentials are supplied the account is authenticated before returning.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrInvalidAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
	}

	if cfg.Username != "" && cfg.Password != "" {
		if err := c.authenticate(ctx, cfg.Username, cfg.Password); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Client) authenticate(ctx context.Context, username, password string) error {
	var resp authResponse
	path := "/account.json/authenticate/" + url.PathEscape(username)
	if err := c.get(ctx, path, url.Values{"password": {password}}, &resp); err != nil {
		return fmt.Errorf("authenticating %s: %w", username, err)
	}
	if resp.Type == "error" {
		return &APIError{Message: resp.Message, Kind: ErrServer}
	}
	if resp.UserID == 0 {
		return ErrAccessDenied
	}
	c.authToken = resp.Token
	c.userID = resp.UserID
	return nil
}

func (c *Client) APIKey() string    { return c.apiKey }
func (c *Client) AuthToken() string { return c.authToken }
func (c *Client) UserID() int64     { return c.userID }

// Authenticated reports whether the client holds an auth token.
func (c *Client) Authenticated() bool {
	return c.authToken != ""
}

// APIHeaders returns the headers sent with every request.
func (c *Client) APIHeaders() map[string]string {
	headers := map[string]string{
		"Content-Type": "application/json",
		"api_key":      c.apiKey,
	}
	if c.Authenticated() {
		headers["auth_token"] = c.authToken
	}
	return headers
}

func (c *Client) ensureAuthenticated() error {
	if !c.Authenticated() {
		return ErrInvalidAuthToken
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, v := range c.APIHeaders() {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if err := errorForStatus(resp.StatusCode, errorMessage(data)); err != nil {
		return err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// errorMessage pulls the "message" field from an error body, falling back to
// the raw body text.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Message != "" {
		return body.Message
	}
	return strings.TrimSpace(string(data))
}

func wordPath(word, suffix string) string {
	return "/word.json/" + url.PathEscape(word) + suffix
}
