// Package smite is a client for the Hi-Rez Smite statistics API. It signs
// each request with a time-based MD5 digest, maintains the API session
// transparently, and passes the service's JSON payloads through unchanged.
//
// Note that any player with Privacy Mode enabled in-game returns a null
// dataset from methods that require a player name, which surfaces here as
// an *EmptyResultError.
package smite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/smite-community/smite-go/pkg/httpclient"
	"go.uber.org/zap"
)

// responseFormat is appended to every method name in the URL path.
const responseFormat = "Json"

const defaultTimeout = 10 * time.Second

// Client represents a connection to the Smite API for one set of developer
// credentials. It is safe for concurrent use; session renewal is serialized
// so parallel callers cannot race two createsession calls.
type Client struct {
	devID    string
	authKey  string
	lang     int
	http     httpclient.Client
	log      *zap.SugaredLogger
	clock    func() time.Time

	mu       sync.Mutex
	endpoint Endpoint
	sess     *session
	verified bool
}

// Option configures a Client at construction time.
type Option func(*Client) error

// WithLanguage sets the language code sent to localized queries (default 1,
// English).
func WithLanguage(lang int) Option {
	return func(c *Client) error {
		c.lang = lang
		return nil
	}
}

// WithEndpoint selects the platform API root (default EndpointPC).
func WithEndpoint(e Endpoint) Option {
	return func(c *Client) error {
		if !e.valid() {
			return &ConfigError{Reason: fmt.Sprintf("unknown endpoint %v", e)}
		}
		c.endpoint = e
		return nil
	}
}

// WithHTTPClient replaces the transport. Tests inject stubs through this.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return &ConfigError{Reason: "http client must not be nil"}
		}
		c.http = hc
		return nil
	}
}

// WithLogger attaches a logging sink. The client never owns the logger's
// lifecycle; without this option logging is a no-op.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) error {
		if log == nil {
			return &ConfigError{Reason: "logger must not be nil"}
		}
		c.log = log
		return nil
	}
}

// withClock overrides the wall clock used for timestamps and signatures.
func withClock(now func() time.Time) Option {
	return func(c *Client) error {
		c.clock = now
		return nil
	}
}

// New creates a client for the given developer ID and authorization key,
// both supplied by Hi-Rez. Credentials are immutable for the lifetime of
// the client.
func New(devID, authKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(devID) == "" {
		return nil, &ConfigError{Reason: "developer id is required"}
	}
	if strings.TrimSpace(authKey) == "" {
		return nil, &ConfigError{Reason: "auth key is required"}
	}

	c := &Client{
		devID:    devID,
		authKey:  authKey,
		lang:     1,
		endpoint: EndpointPC,
		log:      zap.NewNop().Sugar(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(defaultTimeout)
	}
	return c, nil
}

// Endpoint returns the currently selected platform.
func (c *Client) Endpoint() Endpoint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.endpoint
}

// SwitchEndpoint replaces the API root used by all subsequent requests.
// Values outside the known platform set yield a *ConfigError and leave the
// previous selection in place. Switching drops the held session: sessions
// are platform-bound, so the next request re-establishes one against the
// new root.
func (c *Client) SwitchEndpoint(e Endpoint) error {
	if !e.valid() {
		return &ConfigError{Reason: fmt.Sprintf("unknown endpoint %v", e)}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if e == c.endpoint {
		return nil
	}
	c.endpoint = e
	c.sess = nil
	c.verified = false
	c.log.Debugw("endpoint switched", "endpoint", e.String(), "base_url", e.BaseURL())
	return nil
}

// Request ensures a live session, builds the signed URL for method with the
// given positional parameters, performs the call and returns the decoded
// JSON payload unchanged. An empty payload (null, {}, [] or "") yields an
// *EmptyResultError.
func (c *Client) Request(ctx context.Context, method string, params ...string) (json.RawMessage, error) {
	if method == "" {
		return nil, &ConfigError{Reason: "method name must not be empty"}
	}

	sessionID, base, err := c.ensureSession(ctx)
	if err != nil {
		return nil, err
	}

	ts := c.nowTimestamp()
	segments := []string{method + responseFormat, c.devID, c.signature(method, ts), sessionID, ts}
	for _, p := range params {
		segments = append(segments, url.PathEscape(p))
	}
	u := base + strings.Join(segments, "/")
	c.log.Debugw("built request url", "api_method", method, "url", u)

	raw, err := c.fetch(ctx, method, u)
	if err != nil {
		return nil, err
	}
	if isEmptyJSON(raw) {
		return nil, &EmptyResultError{Method: method}
	}
	return json.RawMessage(raw), nil
}

// fetch performs one GET and maps the HTTP status onto the error taxonomy:
// 404 means the service rejected the auth details, 400 a malformed request,
// any other non-2xx a transport failure. 2xx bodies must decode as JSON.
func (c *Client) fetch(ctx context.Context, method, u string) ([]byte, error) {
	resp, err := c.http.Get(ctx, u, nil)
	if err != nil {
		c.log.Errorw("http request failed", "api_method", method, "error", err)
		return nil, fmt.Errorf("smite: %s: %w", method, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return nil, &SessionError{Reason: method + ": auth details may be incorrect"}
	case code == http.StatusBadRequest:
		return nil, &BadRequestError{Method: method}
	case code < 200 || code > 299:
		snippet := bodySnippet(resp.Body())
		c.log.Errorw("unexpected http status", "api_method", method, "status", code, "body", snippet)
		return nil, &TransportError{Method: method, Status: code, Body: snippet}
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("smite: %s: response is not valid JSON", method)
	}
	return body, nil
}

// isEmptyJSON reports whether a decoded payload carries no usable data.
func isEmptyJSON(raw []byte) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return len(strings.TrimSpace(string(raw))) == 0
	}
	switch t := v.(type) {
	case nil:
		return true
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	case string:
		return t == ""
	}
	return false
}

func bodySnippet(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	if len(body) > 512 {
		body = body[:512]
	}
	return strings.TrimSpace(string(body))
}
