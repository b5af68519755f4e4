// Package transport provides the HTTP plumbing shared by platform clients:
// authentication, common headers, and response decoding.
package transport

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/quillmark/quill/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = 30 * time.Second

// Accept is the versioned response format requested from the platform.
const Accept = "application/vnd.forem.api-v1+json"

// Client provides HTTP client functionality with authentication.
type Client struct {
	http      *http.Client
	auth      Authenticator
	userAgent string
}

// New creates a new transport client with the specified authenticator.
func New(auth Authenticator, userAgent string) *Client {
	return &Client{
		http:      &http.Client{Timeout: DefaultHTTPTimeout},
		auth:      auth,
		userAgent: userAgent,
	}
}

// Do performs an HTTP request with authentication and common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.auth != nil {
		c.auth.Apply(req)
	}

	req.Header.Set("Accept", Accept)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &errors.APIError{Endpoint: url, Err: err}
	}
	return c.Do(req)
}

// Send performs a request with a JSON body.
func (c *Client) Send(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, &errors.APIError{Endpoint: url, Err: err}
	}
	return c.Do(req)
}
