package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file,
// optionally overridden by environment variables.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Proxy       ProxyConfig       `toml:"proxy"`
	Cache       CacheConfig       `toml:"cache"`
	Server      ServerConfig      `toml:"server"`
}

// CredentialsConfig contains the Spotify client-credentials pair.
//
// Presence of both values marks the configuration as "live": the source
// selector will route requests to the remote catalog instead of the local one.
type CredentialsConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// ProxyConfig contains settings for the intermediary credential proxy.
//
// When enabled, requests go to BaseURL and carry no Authorization header;
// the proxy authenticates server-side.
type ProxyConfig struct {
	Enabled bool   `toml:"enabled"`
	BaseURL string `toml:"base_url"`
}

// CacheConfig contains offline response cache settings.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// ServerConfig contains HTTP facade settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoadConfig reads and parses a TOML configuration file from the specified
// path, then applies .env and environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyEnv()
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the
// embedded example config, with environment overrides applied.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	config.applyEnv()
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrInvalidInput)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyEnv loads a .env file when present and lets NEXTSOUND_* variables
// override the file-based configuration.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("NEXTSOUND_CLIENT_ID"); v != "" {
		c.Credentials.ClientID = v
	}
	if v := os.Getenv("NEXTSOUND_CLIENT_SECRET"); v != "" {
		c.Credentials.ClientSecret = v
	}
	if v := os.Getenv("NEXTSOUND_USE_PROXY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Proxy.Enabled = b
		}
	}
	if v := os.Getenv("NEXTSOUND_PROXY_URL"); v != "" {
		c.Proxy.BaseURL = v
	}
	if v := os.Getenv("NEXTSOUND_OFFLINE_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Cache.Enabled = b
		}
	}
}

// HasCredentials reports whether a direct client-id/secret pair is configured.
func (c *Config) HasCredentials() bool {
	return c.Credentials.ClientID != "" && c.Credentials.ClientSecret != ""
}

// UseProxy reports whether the intermediary credential proxy is configured.
func (c *Config) UseProxy() bool {
	return c.Proxy.Enabled && c.Proxy.BaseURL != ""
}

// Live reports whether any remote access path is configured. When false the
// source selector serves every request from the local catalog.
func (c *Config) Live() bool {
	return c.HasCredentials() || c.UseProxy()
}
