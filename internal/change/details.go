package change

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// recentMessageCount bounds how many change messages the summary shows.
const recentMessageCount = 5

// Details summarizes one change: subject, owner, status, reviewers with
// their current label votes, and the most recent messages.
func Details(ctx context.Context, d Doer, baseURL, changeID string) (string, error) {
	out, err := d.Do(ctx, []string{changeURL(baseURL, changeID, "detail")}, baseURL)
	if err != nil {
		return "", err
	}

	var c changeInfo
	if err := json.Unmarshal([]byte(out), &c); err != nil {
		return parseFailure(err), nil
	}
	if c.Number == 0 && c.Subject == "" {
		return "", fmt.Errorf("unexpected change response for CL %s: no change data", changeID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Summary for CL %d:\n", c.Number)
	fmt.Fprintf(&b, "  Subject: %s\n", c.Subject)
	fmt.Fprintf(&b, "  Owner: %s\n", c.Owner.Email)
	fmt.Fprintf(&b, "  Status: %s\n", c.Status)

	// The reviewers key being present but empty still prints the
	// header; a missing key omits the section entirely.
	if c.Reviewers != nil {
		b.WriteString("  Reviewers:\n")
		for _, r := range c.Reviewers["REVIEWER"] {
			if votes := votesFor(c.Labels, r.AccountID); votes != "" {
				fmt.Fprintf(&b, "    - %s (%s)\n", r.Email, votes)
			} else {
				fmt.Fprintf(&b, "    - %s\n", r.Email)
			}
		}
	}

	if len(c.Messages) > 0 {
		b.WriteString("  Recent Messages:\n")
		msgs := c.Messages
		if len(msgs) > recentMessageCount {
			msgs = msgs[len(msgs)-recentMessageCount:]
		}
		for _, m := range msgs {
			date := m.Date
			if date == "" {
				date = "No date"
			}
			author := m.Author.Name
			if author == "" {
				author = "Gerrit"
			}
			fmt.Fprintf(&b, "  - (Patch Set %d) [%s] (%s): %s\n", m.RevisionNumber, date, author, strings.TrimSpace(m.Message))
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// votesFor collects an account's non-zero label votes as
// "Code-Review: +1, Verified: -1".
func votesFor(labels map[string]labelInfo, accountID int) string {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		for _, a := range labels[name].All {
			if a.AccountID == accountID && a.Value != 0 {
				parts = append(parts, fmt.Sprintf("%s: %+d", name, a.Value))
			}
		}
	}
	return strings.Join(parts, ", ")
}
