/*
Package configs loads the service configuration from environment variables.
*/
package configs

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
)

// DefaultTokenSecret is the signing secret used when TOKEN_SECRET is unset.
const DefaultTokenSecret = "abc123"

// ID schemes accepted by USER_ID_SCHEME.
const (
	IDSchemeRandom   = "random"
	IDSchemeSequence = "sequence"
	IDSchemeUUID     = "uuid"
)

// AppConfig contains every setting the process needs at startup.
type AppConfig struct {
	// General Server Settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Host        string `env:"HOST" envDefault:"127.0.0.1"`
	Port        int    `env:"PORT" envDefault:"8080"`

	// Security Settings
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// TokenSecret is the HMAC secret for login tokens. Unset means DefaultTokenSecret,
	// which is public and must be overridden outside development. Set but empty
	// signs with an empty key.
	TokenSecret string `env:"TOKEN_SECRET"`

	// Directory Settings
	UserIDScheme string `env:"USER_ID_SCHEME" envDefault:"random"`
}

// IsDevelopment reports whether the process runs in the development environment.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// Addr returns the listen address in host:port form.
func (c *AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig parses the environment into an AppConfig and validates it.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the allowed range (%d-%d)", cfg.Port, 1024, 65535)
	}

	origins := make([]string, 0, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	cfg.AllowedOrigins = origins

	if _, set := os.LookupEnv("TOKEN_SECRET"); !set {
		cfg.TokenSecret = DefaultTokenSecret
	}

	cfg.UserIDScheme = strings.ToLower(strings.TrimSpace(cfg.UserIDScheme))
	if !slices.Contains([]string{IDSchemeRandom, IDSchemeSequence, IDSchemeUUID}, cfg.UserIDScheme) {
		return nil, fmt.Errorf("invalid USER_ID_SCHEME %q: want %s, %s or %s",
			cfg.UserIDScheme, IDSchemeRandom, IDSchemeSequence, IDSchemeUUID)
	}

	return cfg, nil
}
