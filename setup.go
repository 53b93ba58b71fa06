package go_moip

import (
	"sync/atomic"

	"github.com/stremovskyy/go-moip/consts"
)

// Config holds the MoIP account credentials and the API base URI.
type Config struct {
	EndpointURI string `validate:"required,url"`
	Token       string
	Key         string
}

// DefaultConfig points at the sandbox with no credentials.
func DefaultConfig() Config {
	return Config{EndpointURI: consts.SandboxURI}
}

// Check reports whether the configuration can sign requests.
//
// Both credentials missing is reported as ErrMissingConfig, not as the individual errors.
func (c Config) Check() error {
	noToken, noKey := c.Token == "", c.Key == ""
	switch {
	case noToken && noKey:
		return newValidationError(ErrMissingConfig, "", "token and key are not configured")
	case noToken:
		return newValidationError(ErrMissingToken, "token", "is required")
	case noKey:
		return newValidationError(ErrMissingKey, "key", "is required")
	}
	if err := validate.Struct(c); err != nil {
		if fe, ok := firstFieldError(err); ok && fe.Tag() == "url" {
			return newValidationError(ErrMissingEndpoint, "endpointURI", "must be a valid URL")
		}
		return newValidationError(ErrMissingEndpoint, "endpointURI", "is required")
	}
	return nil
}

// The process-wide configuration. Set it once at startup, before concurrent use.
var current atomic.Pointer[Config]

// Setup replaces the process-wide configuration. fn starts from DefaultConfig, so every
// call fully describes the new state.
//
//	go_moip.Setup(func(c *go_moip.Config) {
//		c.Token = os.Getenv("MOIP_TOKEN")
//		c.Key = os.Getenv("MOIP_KEY")
//	})
func Setup(fn func(*Config)) {
	cfg := DefaultConfig()
	if fn != nil {
		fn(&cfg)
	}
	current.Store(&cfg)
}

// Configure is Setup for the three fields at once.
func Configure(endpointURI, token, key string) {
	Setup(func(c *Config) {
		c.EndpointURI = endpointURI
		c.Token = token
		c.Key = key
	})
}

// CurrentConfig returns a copy of the process-wide configuration.
func CurrentConfig() Config {
	if c := current.Load(); c != nil {
		return *c
	}
	return DefaultConfig()
}

// CheckConfiguration runs Config.Check on the process-wide configuration.
func CheckConfiguration() error {
	return CurrentConfig().Check()
}
