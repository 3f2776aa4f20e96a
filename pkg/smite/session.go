package smite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SessionState is the lifecycle position of the held session.
type SessionState int

const (
	// SessionAbsent: no session held; the next request establishes one.
	SessionAbsent SessionState = iota
	// SessionCreated: a session was issued but has not been probed yet.
	SessionCreated
	// SessionVerified: the last liveness probe confirmed the session.
	SessionVerified
)

func (s SessionState) String() string {
	switch s {
	case SessionAbsent:
		return "absent"
	case SessionCreated:
		return "created"
	case SessionVerified:
		return "verified"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// SessionState reports where the held session is in its lifecycle.
func (c *Client) SessionState() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.sess == nil:
		return SessionAbsent
	case c.verified:
		return SessionVerified
	}
	return SessionCreated
}

// session is the server-issued token authorizing signed requests without
// re-sending the auth key. The remote service expires it after inactivity
// on its own schedule; the client holds exactly one and replaces it
// wholesale on renewal.
type session struct {
	id string
}

// ensureSession returns the held session's identifier, establishing a new
// session first when the slot is empty (initial state, a failed probe, or
// an endpoint switch). It never probes on the hot path; liveness is the
// recorded outcome of the last probe. The base URL is snapshotted under the
// same lock so a concurrent endpoint switch cannot split a request across
// platforms.
func (c *Client) ensureSession(ctx context.Context) (sessionID, baseURL string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	base := c.endpoint.BaseURL()
	if c.sess != nil {
		return c.sess.id, base, nil
	}

	c.log.Infow("creating new session", "endpoint", c.endpoint.String())
	sess, err := c.createSession(ctx, base)
	if err != nil {
		return "", "", err
	}
	c.sess = sess
	c.verified = false
	return sess.id, base, nil
}

// createSession calls createsession and decodes the issued token. Called
// with c.mu held so concurrent renewals are serialized.
func (c *Client) createSession(ctx context.Context, base string) (*session, error) {
	const method = "createsession"

	ts := c.nowTimestamp()
	u := base + method + responseFormat + "/" + c.devID + "/" + c.signature(method, ts) + "/" + ts

	raw, err := c.fetch(ctx, method, u)
	if err != nil {
		return nil, err
	}

	var payload struct {
		SessionID string `json:"session_id"`
		RetMsg    string `json:"ret_msg"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("smite: %s: decode response: %w", method, err)
	}
	if payload.SessionID == "" {
		reason := "createsession response carried no session_id"
		if payload.RetMsg != "" {
			reason += ": " + payload.RetMsg
		}
		return nil, &SessionError{Reason: reason}
	}

	c.log.Debugw("session established", "session_id", payload.SessionID)
	return &session{id: payload.SessionID}, nil
}

// TestSession probes whether the held session is still accepted by the
// remote service. It reports true only when the response carries the
// service's success marker; on any other response the session is dropped so
// the next request establishes a fresh one. With no session held it reports
// false without a network call. An HTTP 404 is a *SessionError (rejected
// credentials), never "session expired" — the two must not be conflated.
func (c *Client) TestSession(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess == nil {
		return false, nil
	}

	const method = "testsession"
	ts := c.nowTimestamp()
	base := c.endpoint.BaseURL()
	u := base + method + responseFormat + "/" + c.devID + "/" + c.signature(method, ts) + "/" + c.sess.id + "/" + ts
	c.log.Debugw("probing session", "url", u)

	raw, err := c.fetch(ctx, method, u)
	if err != nil {
		return false, err
	}

	if !strings.Contains(string(raw), "successful") {
		c.log.Infow("session probe failed; dropping session", "session_id", c.sess.id)
		c.sess = nil
		c.verified = false
		return false, nil
	}

	c.verified = true
	return true, nil
}

// InvalidateSession empties the session slot. The next request establishes
// a fresh session.
func (c *Client) InvalidateSession() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess = nil
	c.verified = false
}
