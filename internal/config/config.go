// Package config handles the XDG configuration directory and runtime settings.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "todoctl"

	// SessionFile is the stored session filename.
	SessionFile = "session.json"

	// DefaultAPIURL is used when TODOCTL_API_URL is not set.
	DefaultAPIURL = "http://localhost:8080"

	// AuthSchemeRaw sends the token verbatim in the Authorization header.
	AuthSchemeRaw = "raw"

	// AuthSchemeBearer prefixes the token with "Bearer ".
	AuthSchemeBearer = "bearer"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the base URL of the remote todo service.
	APIURL string

	// AuthScheme selects the credential wire convention: "raw" or "bearer".
	// Deployments vary; this is the single switch for it.
	AuthScheme string

	// TZ is the calendar used by the date filter.
	TZ *time.Location

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory and
// settings read from the environment (a .env file in the working directory
// is honored if present).
func New(configDir string) (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	cfg := &Config{
		Dir:        dir,
		APIURL:     DefaultAPIURL,
		AuthScheme: AuthSchemeRaw,
		TZ:         time.Local,
	}

	if v := os.Getenv("TODOCTL_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("TODOCTL_AUTH_SCHEME"); v != "" {
		cfg.AuthScheme = v
	}
	if v := os.Getenv("TODOCTL_TZ"); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return nil, err
		}
		cfg.TZ = loc
	}

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path to the stored session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// Location returns the calendar used for day comparisons, never nil.
func (c *Config) Location() *time.Location {
	if c.TZ == nil {
		return time.Local
	}
	return c.TZ
}
