// Package settings reads wgstart defaults from the process environment.
package settings

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Prefix is prepended to every variable name.
const Prefix = "WGSTART_"

// DefaultPort is the port the proxy listens on unless told otherwise.
const DefaultPort = 25344

// Settings are the environment-supplied defaults. Command-line flags take
// precedence over them.
type Settings struct {
	// Port is both the proxy's listen port and the SOCKS5 port the egress
	// check dials.
	Port int `env:"PORT" envDefault:"25344"`

	// Timeout bounds the egress check round trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// CheckURL overrides the egress check page. Empty means egress.DefaultURL.
	CheckURL string `env:"CHECK_URL"`

	// SocksHost is where the proxy's SOCKS5 listener answers.
	SocksHost string `env:"SOCKS_HOST" envDefault:"localhost"`
}

// Load parses settings from the process environment.
func Load() (*Settings, error) {
	return load(env.Options{Prefix: Prefix})
}

// LoadFrom parses settings from vars instead of the process environment.
func LoadFrom(vars map[string]string) (*Settings, error) {
	return load(env.Options{Prefix: Prefix, Environment: vars})
}

func load(opts env.Options) (*Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

// Validate checks that the Settings are usable. Port is left to CheckPort
// because a --port flag may replace it.
func (s *Settings) Validate() error {
	if s.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", s.Timeout)
	}
	if s.SocksHost == "" {
		return fmt.Errorf("SOCKS host is required")
	}
	return nil
}

// CheckPort reports whether p is a usable TCP port.
func CheckPort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("port must be between 1 and 65535 (got %d)", p)
	}
	return nil
}
