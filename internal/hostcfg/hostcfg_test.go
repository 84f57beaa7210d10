package hostcfg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hosts.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromEnvPath(t *testing.T) {
	path := writeConfig(t, `
default_gerrit_base_url: https://fuchsia-review.googlesource.com
gerrit_hosts:
  - name: Fuchsia
    internal_url: https://fuchsia-review.git.private.corporation.com/
    external_url: https://fuchsia-review.googlesource.com/
    authentication:
      type: git_cookies
      gitcookies_path: ~/.gitcookies
`)
	t.Setenv(ConfigPathEnv, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DefaultGerritBaseURL != "https://fuchsia-review.googlesource.com" {
		t.Errorf("DefaultGerritBaseURL = %q", cfg.DefaultGerritBaseURL)
	}
	if len(cfg.GerritHosts) != 1 {
		t.Fatalf("got %d hosts, want 1", len(cfg.GerritHosts))
	}
	h := cfg.GerritHosts[0]
	if h.Name != "Fuchsia" {
		t.Errorf("Name = %q", h.Name)
	}
	if h.Auth.Type != SchemeGitCookies {
		t.Errorf("Auth.Type = %q", h.Auth.Type)
	}
	if h.Auth.GitcookiesPath != "~/.gitcookies" {
		t.Errorf("GitcookiesPath = %q", h.Auth.GitcookiesPath)
	}
}

func TestLoadAcceptsJSON(t *testing.T) {
	path := writeConfig(t, `{"gerrit_hosts": [{"name": "Corp", "external_url": "https://gerrit.corp.example.com/", "authentication": {"type": "gob_curl"}}]}`)
	t.Setenv(ConfigPathEnv, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.GerritHosts) != 1 || cfg.GerritHosts[0].Auth.Type != SchemeGobCurl {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadExplicitPathMissing(t *testing.T) {
	t.Setenv(ConfigPathEnv, filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv(ConfigPathEnv, "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v, want empty config", err)
	}
	if len(cfg.GerritHosts) != 0 {
		t.Errorf("got %d hosts, want 0", len(cfg.GerritHosts))
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "gerrit_hosts: [unclosed")
	t.Setenv(ConfigPathEnv, path)

	if _, err := Load(); err == nil {
		t.Error("Load() succeeded on malformed config")
	}
}

func TestBaseURL(t *testing.T) {
	path := writeConfig(t, "default_gerrit_base_url: https://config-gerrit.com\n")

	t.Run("explicit wins over env and config", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, path)
		t.Setenv(BaseURLEnv, "https://env-gerrit.com")
		got, err := BaseURL("https://parameter-gerrit.com")
		if err != nil || got != "https://parameter-gerrit.com" {
			t.Errorf("BaseURL = %q, %v", got, err)
		}
	})

	t.Run("env wins over config", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, path)
		t.Setenv(BaseURLEnv, "https://env-gerrit.com")
		got, err := BaseURL("")
		if err != nil || got != "https://env-gerrit.com" {
			t.Errorf("BaseURL = %q, %v", got, err)
		}
	})

	t.Run("config default", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, path)
		t.Setenv(BaseURLEnv, "")
		got, err := BaseURL("")
		if err != nil || got != "https://config-gerrit.com" {
			t.Errorf("BaseURL = %q, %v", got, err)
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		t.Setenv(ConfigPathEnv, "")
		t.Setenv(BaseURLEnv, "")
		t.Setenv("HOME", t.TempDir())
		if _, err := BaseURL(""); err == nil {
			t.Error("BaseURL succeeded with nothing configured")
		}
	})
}
