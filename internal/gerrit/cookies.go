package gerrit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gerritctl/internal/hostcfg"
)

// gitCookiesPrefix resolves a cookie header from a gitcookies file for
// the target host. A missing gitcookies_path field is a configuration
// error, but an absent cookie file or a file with no matching record is
// a normal local-environment condition and degrades to an anonymous
// request.
func gitCookiesPrefix(targetURL string, auth hostcfg.Auth) ([]string, error) {
	if auth.GitcookiesPath == "" {
		return nil, fmt.Errorf("%w: git_cookies requires 'gitcookies_path'", ErrInvalidAuthConfig)
	}

	path, err := expandHome(auth.GitcookiesPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return anonymousPrefix(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read gitcookies file %s: %w", path, err)
	}

	name, value, ok := lookupCookie(data, hostcfg.Hostname(targetURL))
	if !ok {
		return anonymousPrefix(), nil
	}
	return []string{"curl", "-b", name + "=" + value, "-L"}, nil
}

// lookupCookie scans cookie-jar records (domain, flag, path, secure,
// expiry, name, value, tab-separated) and returns the last record whose
// domain matches host. Later entries override earlier ones, matching
// cookie-file semantics where newer credentials are appended. Malformed
// lines and comments are skipped.
func lookupCookie(data []byte, host string) (name, value string, ok bool) {
	if host == "" {
		return "", "", false
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			continue
		}
		if !domainMatches(fields[0], host) {
			continue
		}
		name, value, ok = fields[5], fields[6], true
	}
	return name, value, ok
}

// domainMatches implements cookie-jar domain semantics: a leading dot
// matches the domain and its subdomains, otherwise the match is exact.
func domainMatches(domain, host string) bool {
	if d, found := strings.CutPrefix(domain, "."); found {
		return host == d || strings.HasSuffix(host, "."+d)
	}
	return host == domain
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
