package smite

import "fmt"

// ConfigError reports invalid client configuration, such as an endpoint
// switch to a value outside the known platform set.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "smite: config: " + e.Reason }

// SessionError reports rejected credentials or a session that could not be
// established or verified. It is never retried automatically.
type SessionError struct {
	Reason string
}

func (e *SessionError) Error() string { return "smite: session: " + e.Reason }

// BadRequestError reports request parameters the remote service judged
// malformed (HTTP 400).
type BadRequestError struct {
	Method string
}

func (e *BadRequestError) Error() string { return "smite: " + e.Method + ": bad request" }

// EmptyResultError reports a request that succeeded but yielded no usable
// data, e.g. a private profile or a query with no matches. Callers should
// treat it as "no data", not as a defect.
type EmptyResultError struct {
	Method string
}

func (e *EmptyResultError) Error() string {
	return "smite: " + e.Method + ": request was successful, but returned no data"
}

// TransportError reports any other non-2xx HTTP status. The body snippet is
// capped; full detail goes to the client's logger.
type TransportError struct {
	Method string
	Status int
	Body   string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("smite: %s: http status %d: %s", e.Method, e.Status, e.Body)
}
