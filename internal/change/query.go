package change

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultQueryLimit caps query results when the caller does not give a
// limit.
const DefaultQueryLimit = 25

// Query searches for changes matching a Gerrit query string and returns
// a formatted listing.
func Query(ctx context.Context, d Doer, baseURL, query string, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultQueryLimit
	}

	out, err := d.Do(ctx, []string{changesURL(baseURL, query, limit)}, baseURL)
	if err != nil {
		return "", err
	}

	var changes []changeInfo
	if err := json.Unmarshal([]byte(out), &changes); err != nil {
		return parseFailure(err), nil
	}
	if len(changes) == 0 {
		return "No changes found matching the query.", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d changes:\n", len(changes))
	for _, c := range changes {
		fmt.Fprintf(&b, "\n  %s", formatChangeLine(c))
	}
	return b.String(), nil
}

// MostRecent returns the most recently updated change owned by user.
func MostRecent(ctx context.Context, d Doer, baseURL, user string) (string, error) {
	out, err := d.Do(ctx, []string{changesURL(baseURL, "owner:"+user, 1)}, baseURL)
	if err != nil {
		return "", err
	}

	var changes []changeInfo
	if err := json.Unmarshal([]byte(out), &changes); err != nil {
		return parseFailure(err), nil
	}
	if len(changes) == 0 {
		return fmt.Sprintf("No changes found for user %s.", user), nil
	}
	return fmt.Sprintf("Most recent CL for %s:\n\n  %s", user, formatChangeLine(changes[0])), nil
}
