package transport

import "net/http"

// Authenticator applies credentials to an outgoing request.
type Authenticator interface {
	Apply(req *http.Request)
}

// APIKeyAuth sends the credential in the platform's api-key header.
type APIKeyAuth struct {
	Key string
}

// Apply implements Authenticator.
func (a *APIKeyAuth) Apply(req *http.Request) {
	if a.Key != "" {
		req.Header.Set("api-key", a.Key)
	}
}

// NoAuth performs no authentication.
type NoAuth struct{}

// Apply implements Authenticator.
func (a *NoAuth) Apply(_ *http.Request) {}
