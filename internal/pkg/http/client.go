package http

import (
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout applies when a gateway is configured without one.
const DefaultTimeout = 10 * time.Second

// Client is a generic HTTP client for communicating with external services
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new HTTP client
func NewClient(serviceURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL: strings.TrimRight(serviceURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Endpoint joins a path or raw query onto the base URL
func (c *Client) Endpoint(pathAndQuery string) string {
	if pathAndQuery == "" {
		return c.BaseURL
	}
	if strings.HasPrefix(pathAndQuery, "?") {
		return c.BaseURL + pathAndQuery
	}
	return c.BaseURL + "/" + strings.TrimLeft(pathAndQuery, "/")
}
