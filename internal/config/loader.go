package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/thruflo/cookieserver/internal/logging"
)

// Default values for Config.
const (
	DefaultHost         = "0.0.0.0"
	DefaultPort         = 8000
	DefaultMaxFormBytes = 1 << 20
	DefaultCookieName   = "yourname"
	DefaultCookieDomain = "localhost"
	DefaultCookieMaxAge = 600
	DefaultLogLevel     = "warn"
)

// DefaultServerConfig returns a ServerConfig listening on all interfaces, port 8000.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:         DefaultHost,
		Port:         DefaultPort,
		MaxFormBytes: DefaultMaxFormBytes,
	}
}

// DefaultCookieConfig returns the yourname cookie scoped to localhost for ten minutes.
func DefaultCookieConfig() CookieConfig {
	return CookieConfig{
		Name:          DefaultCookieName,
		Domain:        DefaultCookieDomain,
		MaxAgeSeconds: DefaultCookieMaxAge,
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Server: DefaultServerConfig(),
		Cookie: DefaultCookieConfig(),
		Log:    LogConfig{Level: DefaultLogLevel},
	}
}

// Addr returns the host:port the server should listen on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses the YAML config at path.
// An empty path returns the defaults. Fields missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if err := ValidateServerConfig(&cfg.Server); err != nil {
		return err
	}
	if err := ValidateCookieConfig(&cfg.Cookie); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: "must be one of debug, info, warn, error"}
	}
	return nil
}

// ValidateServerConfig checks that server config values are valid.
func ValidateServerConfig(cfg *ServerConfig) error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return ValidationError{Field: "server.port", Message: "must be between 0 and 65535"}
	}
	if cfg.MaxFormBytes <= 0 {
		return ValidationError{Field: "server.max_form_bytes", Message: "must be positive"}
	}
	return nil
}

// ValidateCookieConfig checks that cookie config values are valid.
func ValidateCookieConfig(cfg *CookieConfig) error {
	if cfg.Name == "" {
		return ValidationError{Field: "cookie.name", Message: "required field is empty"}
	}
	if !isToken(cfg.Name) {
		return ValidationError{Field: "cookie.name", Message: "must be an HTTP token"}
	}
	if cfg.MaxAgeSeconds <= 0 {
		return ValidationError{Field: "cookie.max_age_seconds", Message: "must be positive"}
	}
	return nil
}

// isToken reports whether s is an RFC 7230 token, the grammar for cookie names.
func isToken(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= ' ' || c >= 0x7f {
			return false
		}
		switch c {
		case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=', '{', '}':
			return false
		}
	}
	return true
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
