package gerrit

import (
	"fmt"

	"gerritctl/internal/hostcfg"
)

// anonymousPrefix is the invocation prefix for unauthenticated requests:
// silent, redirect-following curl.
func anonymousPrefix() []string {
	return []string{"curl", "-s", "-L"}
}

// AuthPrefix resolves the leading command-line arguments that establish
// authentication for a request to targetURL. The caller appends its own
// arguments (method, headers, payload, URL) after the prefix.
//
// Targets that match no registry entry, or match an entry with no
// authentication configured, get an anonymous prefix. A matched scheme
// with missing mandatory fields or an unknown scheme tag fails with
// ErrInvalidAuthConfig.
func AuthPrefix(targetURL string, hosts []hostcfg.Host) ([]string, error) {
	host := hostcfg.Match(targetURL, hosts)
	if host == nil {
		return anonymousPrefix(), nil
	}

	switch host.Auth.Type {
	case hostcfg.SchemeGobCurl:
		// Trust is delegated to gob-curl's own session mechanism; no
		// credential material is handled here.
		return []string{"gob-curl", "-s"}, nil
	case hostcfg.SchemeHTTPBasic:
		return basicAuthPrefix(host.Auth)
	case hostcfg.SchemeGitCookies:
		return gitCookiesPrefix(targetURL, host.Auth)
	case "":
		// Registry entry used only for URL normalization.
		return anonymousPrefix(), nil
	default:
		return nil, fmt.Errorf("%w: unknown scheme %q for host %s", ErrInvalidAuthConfig, host.Auth.Type, host.ExternalURL)
	}
}

func basicAuthPrefix(auth hostcfg.Auth) ([]string, error) {
	if auth.Username == "" || auth.AuthToken == "" {
		return nil, fmt.Errorf("%w: http_basic requires both 'username' and 'auth_token'", ErrInvalidAuthConfig)
	}
	return []string{"curl", "--user", auth.Username + ":" + auth.AuthToken, "-L"}, nil
}
