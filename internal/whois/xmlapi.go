package whois

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
	DefaultXMLAPIURL = "http://www.whoisxmlapi.com"
	servicePath      = "/whoisserver/WhoisService"
)

// XMLAPIConfig configures the WHOIS XML API client. Credentials are optional;
// APIKey takes precedence over Username/Password.
type XMLAPIConfig struct {
	BaseURL    string
	APIKey     string
	Username   string
	Password   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// XMLAPIClient queries the WhoisService JSON endpoint.
type XMLAPIClient struct {
	baseURL    string
	apiKey     string
	username   string
	password   string
	httpClient *http.Client
}

// NewXMLAPIClient creates a client, filling unset fields with defaults.
func NewXMLAPIClient(cfg XMLAPIConfig) *XMLAPIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultXMLAPIURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &XMLAPIClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: httpClient,
	}
}

// Name identifies the provider in logs and metrics.
func (c *XMLAPIClient) Name() string {
	return "xmlapi"
}

type whoisResponse struct {
	WhoisRecord  *whoisRecord `json:"WhoisRecord"`
	ErrorMessage *struct {
		ErrorCode string `json:"errorCode"`
		Msg       string `json:"msg"`
	} `json:"ErrorMessage"`
}

type whoisRecord struct {
	DomainName    string          `json:"domainName"`
	RegistrarName string          `json:"registrarName"`
	CreatedDate   string          `json:"createdDate"`
	ExpiresDate   string          `json:"expiresDate"`
	DataError     json.RawMessage `json:"dataError"`
}

// Lookup issues GET /whoisserver/WhoisService?domainName=<domain>&outputFormat=json.
func (c *XMLAPIClient) Lookup(ctx context.Context, domain string) (Result, error) {
	query := url.Values{}
	query.Set("domainName", domain)
	query.Set("outputFormat", "json")
	if c.apiKey != "" {
		query.Set("apiKey", c.apiKey)
	} else if c.username != "" {
		query.Set("username", c.username)
		query.Set("password", c.password)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+servicePath+"?"+query.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build whois request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "domainsearch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("whois request for %s failed: %w", domain, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed whoisResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Result{}, fmt.Errorf("failed to decode whois response for %s: %w", domain, err)
	}

	if parsed.ErrorMessage != nil {
		return Result{}, &APIError{Code: parsed.ErrorMessage.ErrorCode, Message: parsed.ErrorMessage.Msg}
	}

	result := Result{Domain: domain}
	if parsed.WhoisRecord == nil {
		return result, nil
	}

	rec := parsed.WhoisRecord
	if flag, ok := dataErrorFlag(rec.DataError); ok {
		result.DataError = flag
		return result, nil
	}

	result.Registered = true
	result.Registrar = rec.RegistrarName
	result.CreatedDate = rec.CreatedDate
	result.ExpiresDate = rec.ExpiresDate
	return result, nil
}

// dataErrorFlag reports whether a dataError value is set, treating null,
// false, 0 and "" as unset.
func dataErrorFlag(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw), true
	}

	switch val := v.(type) {
	case nil:
		return "", false
	case bool:
		return "true", val
	case float64:
		return string(raw), val != 0
	case string:
		return val, val != ""
	default:
		return string(raw), true
	}
}
