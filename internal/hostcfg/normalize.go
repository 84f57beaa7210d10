package hostcfg

import (
	"net/url"
	"strings"
)

// Normalize maps an arbitrary host reference (bare hostname, internal
// alias, external URL, with or without scheme) to the canonical external
// base URL for that host. Matching is by hostname only, so scheme and
// trailing-slash differences never cause a registry miss. References
// that match no registry entry pass through with an https scheme and no
// trailing slash.
func Normalize(reference string, hosts []Host) string {
	ref := strings.TrimSuffix(strings.TrimSpace(reference), "/")
	if !strings.Contains(ref, "://") {
		ref = "https://" + ref
	}

	u, err := url.Parse(ref)
	if err != nil || u.Host == "" {
		return ref
	}

	if h := Match(ref, hosts); h != nil {
		return strings.TrimSuffix(h.ExternalURL, "/")
	}

	// Unknown host: already external or not registered. Rebuild with
	// https so downstream requests are consistent either way.
	return "https://" + u.Host
}

// Match returns the registry entry whose internal or external hostname
// matches the target URL, or nil when the target is unregistered.
// Matching is hostname-only: scheme, port and trailing slashes are
// ignored.
func Match(target string, hosts []Host) *Host {
	name := Hostname(target)
	if name == "" {
		return nil
	}
	for i := range hosts {
		h := &hosts[i]
		if name == Hostname(h.InternalURL) || name == Hostname(h.ExternalURL) {
			return h
		}
	}
	return nil
}

// Hostname extracts the hostname from a URL or bare host reference.
// References without a scheme are tolerated. Returns "" when no
// hostname can be extracted.
func Hostname(configured string) string {
	if configured == "" {
		return ""
	}
	s := configured
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
