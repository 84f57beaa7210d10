package change

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// bugRefPattern matches issue-tracker references like b/12345 in commit
// messages.
var bugRefPattern = regexp.MustCompile(`b/(\d+)`)

// Bugs extracts the bug IDs referenced by the commit message of a
// change's current patch set.
func Bugs(ctx context.Context, d Doer, baseURL, changeID string) (string, error) {
	out, err := d.Do(ctx, []string{changeURL(baseURL, changeID, "revisions/current/commit")}, baseURL)
	if err != nil {
		return "", err
	}

	var commit struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(out), &commit); err != nil {
		return parseFailure(err), nil
	}
	if commit.Message == "" {
		return fmt.Sprintf("No commit message found for CL %s.", changeID), nil
	}

	var ids []string
	for _, m := range bugRefPattern.FindAllStringSubmatch(commit.Message, -1) {
		if !slices.Contains(ids, m[1]) {
			ids = append(ids, m[1])
		}
	}
	if len(ids) == 0 {
		return "No bug IDs found in the commit message.", nil
	}
	return "Found bug(s): " + strings.Join(ids, ", "), nil
}
