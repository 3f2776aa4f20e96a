// Package httpclient is the transport seam for the Smite API client.
// The library performs every network call through the Client interface so
// tests and embedders can swap in stub or instrumented transports.
package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}
