package smite

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEndpointBaseURLs(t *testing.T) {
	cases := map[Endpoint]string{
		EndpointPC:   "http://api.smitegame.com/smiteapi.svc/",
		EndpointPS4:  "http://api.ps4.smitegame.com/smiteapi.svc/",
		EndpointXbox: "http://api.xbox.smitegame.com/smiteapi.svc/",
	}
	for e, want := range cases {
		if got := e.BaseURL(); got != want {
			t.Fatalf("%v.BaseURL() = %q, want %q", e, got, want)
		}
	}
	if got := Endpoint(42).BaseURL(); got != "" {
		t.Fatalf("unknown endpoint BaseURL = %q, want empty", got)
	}
}

func TestParseEndpoint(t *testing.T) {
	for s, want := range map[string]Endpoint{"": EndpointPC, "pc": EndpointPC, "ps4": EndpointPS4, "xbox": EndpointXbox} {
		got, err := ParseEndpoint(s)
		if err != nil {
			t.Fatalf("ParseEndpoint(%q): %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseEndpoint(%q) = %v, want %v", s, got, want)
		}
	}

	var cfgErr *ConfigError
	if _, err := ParseEndpoint("wii"); !errors.As(err, &cfgErr) {
		t.Fatalf("ParseEndpoint(wii): got %v, want *ConfigError", err)
	}
}

func TestSwitchEndpointRejectsUnknownValue(t *testing.T) {
	transport := sessionAwareStub(`{"ok":true}`)
	c := newTestClient(t, transport)

	var cfgErr *ConfigError
	if err := c.SwitchEndpoint(Endpoint(99)); !errors.As(err, &cfgErr) {
		t.Fatalf("got %v, want *ConfigError", err)
	}
	if got := c.Endpoint(); got != EndpointPC {
		t.Fatalf("failed switch changed endpoint to %v", got)
	}

	if _, err := c.Request(context.Background(), "getgods", "1"); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if !strings.HasPrefix(transport.calls[0], EndpointPC.BaseURL()) {
		t.Fatalf("requests left the previous base URL: %q", transport.calls[0])
	}
}

func TestSwitchEndpointDropsSession(t *testing.T) {
	transport := sessionAwareStub(`{"ok":true}`)
	c := newTestClient(t, transport)

	if _, err := c.Request(context.Background(), "getgods", "1"); err != nil {
		t.Fatalf("Request: %v", err)
	}

	if err := c.SwitchEndpoint(EndpointPS4); err != nil {
		t.Fatalf("SwitchEndpoint: %v", err)
	}
	if _, err := c.Request(context.Background(), "getgods", "1"); err != nil {
		t.Fatalf("Request after switch: %v", err)
	}

	if transport.count("createsessionJson") != 2 {
		t.Fatalf("session must be re-established after a platform switch, calls: %v", transport.calls)
	}
	last := transport.calls[len(transport.calls)-1]
	if !strings.HasPrefix(last, EndpointPS4.BaseURL()) {
		t.Fatalf("request after switch still on old base URL: %q", last)
	}
}

func TestSwitchEndpointSamePlatformKeepsSession(t *testing.T) {
	transport := sessionAwareStub(`{"ok":true}`)
	c := newTestClient(t, transport)

	if _, err := c.Request(context.Background(), "getgods", "1"); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if err := c.SwitchEndpoint(EndpointPC); err != nil {
		t.Fatalf("SwitchEndpoint: %v", err)
	}
	if _, err := c.Request(context.Background(), "getgods", "1"); err != nil {
		t.Fatalf("Request: %v", err)
	}
	if transport.count("createsessionJson") != 1 {
		t.Fatalf("no-op switch must not drop the session, calls: %v", transport.calls)
	}
}
