package gerrit

import "strings"

// jsonEnvelope is the fixed anti-hijacking sentinel Gerrit prepends to
// successful JSON response bodies.
const jsonEnvelope = ")]}'"

// StripEnvelope removes the Gerrit JSON envelope (the sentinel and its
// line terminator) from the start of raw. Responses that do not carry
// the envelope, such as base64 patch downloads, are returned unchanged.
// The content is never parsed or validated here.
func StripEnvelope(raw string) string {
	rest, found := strings.CutPrefix(raw, jsonEnvelope)
	if !found {
		return raw
	}
	if after, found := strings.CutPrefix(rest, "\r\n"); found {
		return after
	}
	if after, found := strings.CutPrefix(rest, "\n"); found {
		return after
	}
	return raw
}
