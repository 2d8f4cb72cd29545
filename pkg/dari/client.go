// Package dari is a convenience client for the Dari browser-automation
// public REST API: workflows, credentials, connected accounts, phone
// numbers, browser profiles, single actions, and browser sessions.
//
// Responses are returned as opaque decoded JSON; the remote service owns
// every persistent shape and this package does not model or validate it.
package dari

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/usedari/dari-go/pkg/httpclient"
)

const (
	// DefaultBaseURL is the production origin of the Dari public API.
	DefaultBaseURL = "https://api.usedari.com"

	// DefaultTimeout bounds each request unless overridden per client or
	// per call.
	DefaultTimeout = 30 * time.Second

	apiKeyHeader = "X-API-Key"
)

// Client wraps the Dari REST API. Construct it with New, release pooled
// connections with Close.
//
// The client holds no mutable state after construction beyond the closed
// flag; concurrent use from multiple goroutines relies on the injected
// transport's own thread safety (the default resty transport is safe).
type Client struct {
	apiKey         string
	baseURL        string
	timeout        time.Duration
	http           httpclient.Client
	defaultHeaders map[string]string // read-only after New
	closed         atomic.Bool
}

// Option configures a Client during construction.
type Option func(*Client)

// WithBaseURL overrides the API origin. A trailing slash is stripped.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout overrides the client-wide request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient injects the HTTP transport used for every request.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client for the given API key. An empty key is a KindConfig
// error returned before any network activity.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &Error{Kind: KindConfig, Message: "api key must be provided"}
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	if c.http == nil {
		c.http = httpclient.NewRestyClient()
	}
	c.defaultHeaders = map[string]string{
		apiKeyHeader: apiKey,
		"User-Agent": "dari-go/" + Version,
		"Accept":     "application/json",
	}
	return c, nil
}

// Close marks the client closed and releases idle transport connections.
// Any call after Close fails fast with a KindConfig error.
func (c *Client) Close() error {
	c.closed.Store(true)
	if closer, ok := c.http.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
	return nil
}
