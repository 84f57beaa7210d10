package change

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type commentInfo struct {
	Line       int         `json:"line"`
	Author     accountInfo `json:"author"`
	Message    string      `json:"message"`
	Unresolved bool        `json:"unresolved"`
	Updated    string      `json:"updated"`
}

// ListComments lists the review comments on a change, grouped by file,
// with resolution state.
func ListComments(ctx context.Context, d Doer, baseURL, changeID string) (string, error) {
	out, err := d.Do(ctx, []string{changeURL(baseURL, changeID, "comments")}, baseURL)
	if err != nil {
		return "", err
	}

	var byFile map[string][]commentInfo
	if err := json.Unmarshal([]byte(out), &byFile); err != nil {
		return parseFailure(err), nil
	}
	if len(byFile) == 0 {
		return fmt.Sprintf("No comments found on CL %s.", changeID), nil
	}

	files := make([]string, 0, len(byFile))
	for name := range byFile {
		files = append(files, name)
	}
	sort.Strings(files)

	var b strings.Builder
	fmt.Fprintf(&b, "Comments for CL %s:\n", changeID)
	for _, name := range files {
		fmt.Fprintf(&b, "\nFile: %s\n", name)
		for _, c := range byFile[name] {
			state := "RESOLVED"
			if c.Unresolved {
				state = "UNRESOLVED"
			}
			author := c.Author.Name
			if author == "" {
				author = c.Author.Email
			}
			fmt.Fprintf(&b, "  L%d: [%s] (%s) - %s\n", c.Line, author, c.Updated, state)
			fmt.Fprintf(&b, "    %s\n", strings.TrimSpace(c.Message))
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
