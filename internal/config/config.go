// Package config provides configuration management for the Insight CLI.
// It handles reading and writing credentials and settings to the config file.
package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// DefaultAPIURL is the default Team Insight API endpoint
	DefaultAPIURL = "https://api.team-insight.io"

	// ConfigDirName is the name of the config directory
	ConfigDirName = ".insight"

	// ConfigFileName is the name of the config file
	ConfigFileName = "config.json"

	// SessionCookieName carries the short-lived session credential
	SessionCookieName = "insight_session"

	// RefreshCookieName carries the long-lived refresh credential
	RefreshCookieName = "insight_refresh"
)

// Environment variable overrides. These take precedence over the config file
// and are not hot-reloadable.
const (
	envAPIURL  = "INSIGHT_API_URL"
	envTimeout = "INSIGHT_TIMEOUT"
	envDebug   = "INSIGHT_DEBUG"
)

// Config represents the CLI configuration stored on disk
type Config struct {
	// SessionToken is the session cookie value for API authentication
	SessionToken string `json:"session_token,omitempty"`

	// RefreshToken is the refresh cookie value used to renew the session
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the expiration time of the session
	ExpiresAt time.Time `json:"expires_at,omitempty"`

	// APIURL is the base URL of the Team Insight API
	APIURL string `json:"api_url,omitempty"`
}

// Manager handles configuration file operations
type Manager struct {
	configPath string
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(homeDir, ConfigDirName, ConfigFileName)
	return &Manager{configPath: configPath}, nil
}

// NewManagerWithPath creates a new configuration manager with a custom path
// This is useful for testing
func NewManagerWithPath(configPath string) *Manager {
	return &Manager{configPath: configPath}
}

// Load reads the configuration from disk
// Returns an empty config if the file doesn't exist
func (m *Manager) Load() (*Config, error) {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{APIURL: DefaultAPIURL}, nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}

	return &config, nil
}

// Save writes the configuration to disk
func (m *Manager) Save(config *Config) error {
	configDir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	// Write with restricted permissions (owner read/write only)
	return os.WriteFile(m.configPath, data, 0600)
}

// Clear removes all session data from the config
func (m *Manager) Clear() error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	config.SessionToken = ""
	config.RefreshToken = ""
	config.ExpiresAt = time.Time{}

	return m.Save(config)
}

// Delete removes the config file entirely
func (m *Manager) Delete() error {
	err := os.Remove(m.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// IsLoggedIn checks if a session credential is stored
func (m *Manager) IsLoggedIn() bool {
	config, err := m.Load()
	if err != nil {
		return false
	}

	return config.SessionToken != "" || config.RefreshToken != ""
}

// SaveSession stores the session and refresh credentials
func (m *Manager) SaveSession(sessionToken, refreshToken string, expiresIn int) error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	config.SessionToken = sessionToken
	config.RefreshToken = refreshToken

	if expiresIn > 0 {
		config.ExpiresAt = time.Now().Add(time.Duration(expiresIn) * time.Second)
	}

	return m.Save(config)
}

// GetAPIURL returns the configured API URL. The INSIGHT_API_URL environment
// variable takes precedence over the config file.
func (m *Manager) GetAPIURL() (string, error) {
	if apiURL := os.Getenv(envAPIURL); apiURL != "" {
		return apiURL, nil
	}

	config, err := m.Load()
	if err != nil {
		return "", err
	}

	if config.APIURL == "" {
		return DefaultAPIURL, nil
	}

	return config.APIURL, nil
}

// GetTimeout returns the request timeout. Overridable via INSIGHT_TIMEOUT
// (seconds); zero means "use the client default".
func (m *Manager) GetTimeout() time.Duration {
	if v := os.Getenv(envTimeout); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return 0
}

// DebugEnabled reports whether debug logging was requested via INSIGHT_DEBUG
func (m *Manager) DebugEnabled() bool {
	v, err := strconv.ParseBool(os.Getenv(envDebug))
	return err == nil && v
}

// Cookies returns the stored session credentials as cookies for the API
// client's jar. Implements the client's credential store.
func (m *Manager) Cookies() []*http.Cookie {
	config, err := m.Load()
	if err != nil {
		return nil
	}

	var cookies []*http.Cookie
	if config.SessionToken != "" {
		cookies = append(cookies, &http.Cookie{Name: SessionCookieName, Value: config.SessionToken})
	}
	if config.RefreshToken != "" {
		cookies = append(cookies, &http.Cookie{Name: RefreshCookieName, Value: config.RefreshToken})
	}
	return cookies
}

// SaveCookies persists rotated session cookies back to the config file.
// Cookies other than the session pair are ignored.
func (m *Manager) SaveCookies(cookies []*http.Cookie) error {
	config, err := m.Load()
	if err != nil {
		return err
	}

	for _, cookie := range cookies {
		switch cookie.Name {
		case SessionCookieName:
			config.SessionToken = cookie.Value
		case RefreshCookieName:
			config.RefreshToken = cookie.Value
		}
	}

	return m.Save(config)
}

// ConfigPath returns the path to the config file
func (m *Manager) ConfigPath() string {
	return m.configPath
}
