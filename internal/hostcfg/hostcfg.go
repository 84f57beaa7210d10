// Package hostcfg provides the Gerrit host registry: which Gerrit
// instances are known, how each one is reached, and how requests to it
// are authenticated.
package hostcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPathEnv names the environment variable that overrides the
// registry file location.
const ConfigPathEnv = "GERRIT_CONFIG_PATH"

// BaseURLEnv names the environment variable that supplies the default
// Gerrit base URL when no explicit URL is given.
const BaseURLEnv = "GERRIT_BASE_URL"

// ErrConfigNotFound indicates an explicitly requested registry file does
// not exist.
var ErrConfigNotFound = errors.New("gerrit host config not found")

// Scheme identifies an authentication scheme for a Gerrit host.
type Scheme string

const (
	// SchemeGobCurl delegates authentication to the gob-curl wrapper.
	SchemeGobCurl Scheme = "gob_curl"
	// SchemeHTTPBasic sends inline basic-auth credentials.
	SchemeHTTPBasic Scheme = "http_basic"
	// SchemeGitCookies reads a cookie from a gitcookies file.
	SchemeGitCookies Scheme = "git_cookies"
)

// Auth describes how requests to a host are authenticated. Exactly one
// scheme is active per host; the fields beyond Type are only meaningful
// for the scheme that requires them.
type Auth struct {
	Type           Scheme `yaml:"type"`
	Username       string `yaml:"username,omitempty"`
	AuthToken      string `yaml:"auth_token,omitempty"`
	GitcookiesPath string `yaml:"gitcookies_path,omitempty"`
}

// Host is one entry in the registry. ExternalURL is the canonical public
// URL; InternalURL is an optional private-network alias for the same
// instance.
type Host struct {
	Name        string `yaml:"name,omitempty"`
	InternalURL string `yaml:"internal_url,omitempty"`
	ExternalURL string `yaml:"external_url"`
	Auth        Auth   `yaml:"authentication,omitempty"`
}

// Config is the registry document.
type Config struct {
	DefaultGerritBaseURL string `yaml:"default_gerrit_base_url,omitempty"`
	GerritHosts          []Host `yaml:"gerrit_hosts"`
}

// Path returns the registry file location: GERRIT_CONFIG_PATH if set,
// otherwise ~/.config/gerritctl/hosts.yaml.
func Path() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gerritctl", "hosts.yaml")
}

// Load reads the registry from Path(). A missing file at an explicitly
// configured path (GERRIT_CONFIG_PATH) is ErrConfigNotFound; a missing
// file at the default path yields an empty registry, meaning every
// target is treated as anonymous. The registry is re-read on every call
// so edits take effect without restarting.
func Load() (*Config, error) {
	path := Path()
	explicit := os.Getenv(ConfigPathEnv) != ""

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read gerrit host config %s: %w", path, err)
	}

	// YAML is a superset of JSON, so registry files written as JSON by
	// other tools load unchanged.
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid gerrit host config %s: %w", path, err)
	}
	return &cfg, nil
}

// BaseURL resolves the Gerrit base URL for an operation. An explicit URL
// always wins, then GERRIT_BASE_URL, then default_gerrit_base_url from
// the registry.
func BaseURL(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if v := os.Getenv(BaseURLEnv); v != "" {
		return v, nil
	}
	cfg, err := Load()
	if err != nil {
		return "", err
	}
	if cfg.DefaultGerritBaseURL != "" {
		return cfg.DefaultGerritBaseURL, nil
	}
	return "", fmt.Errorf("no Gerrit base URL: pass --gerrit, set %s, or configure default_gerrit_base_url", BaseURLEnv)
}
