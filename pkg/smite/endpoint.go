package smite

import "fmt"

// Endpoint selects which platform's API root requests are sent to. The three
// platforms serve the same API contract from different base URLs.
type Endpoint int

const (
	EndpointPC Endpoint = iota
	EndpointPS4
	EndpointXbox
)

// BaseURL returns the API root for the endpoint, or "" for an unknown value.
func (e Endpoint) BaseURL() string {
	switch e {
	case EndpointPC:
		return "http://api.smitegame.com/smiteapi.svc/"
	case EndpointPS4:
		return "http://api.ps4.smitegame.com/smiteapi.svc/"
	case EndpointXbox:
		return "http://api.xbox.smitegame.com/smiteapi.svc/"
	}
	return ""
}

func (e Endpoint) valid() bool {
	switch e {
	case EndpointPC, EndpointPS4, EndpointXbox:
		return true
	}
	return false
}

func (e Endpoint) String() string {
	switch e {
	case EndpointPC:
		return "pc"
	case EndpointPS4:
		return "ps4"
	case EndpointXbox:
		return "xbox"
	}
	return fmt.Sprintf("endpoint(%d)", int(e))
}

// ParseEndpoint maps a configuration value to an Endpoint.
func ParseEndpoint(s string) (Endpoint, error) {
	switch s {
	case "", "pc":
		return EndpointPC, nil
	case "ps4":
		return EndpointPS4, nil
	case "xbox":
		return EndpointXbox, nil
	}
	return 0, &ConfigError{Reason: fmt.Sprintf("unknown endpoint %q (want pc, ps4 or xbox)", s)}
}
