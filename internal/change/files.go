package change

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type fileInfo struct {
	Status        string `json:"status"`
	LinesInserted int    `json:"lines_inserted"`
	LinesDeleted  int    `json:"lines_deleted"`
}

// ListFiles lists the files touched by the current patch set of a
// change, with per-file insert/delete counts. The commit message
// pseudo-file is skipped.
func ListFiles(ctx context.Context, d Doer, baseURL, changeID string) (string, error) {
	filesOut, err := d.Do(ctx, []string{changeURL(baseURL, changeID, "revisions/current/files")}, baseURL)
	if err != nil {
		return "", err
	}
	var files map[string]fileInfo
	if err := json.Unmarshal([]byte(filesOut), &files); err != nil {
		return parseFailure(err), nil
	}

	detailOut, err := d.Do(ctx, []string{changeURL(baseURL, changeID, "")}, baseURL)
	if err != nil {
		return "", err
	}
	var c changeInfo
	if err := json.Unmarshal([]byte(detailOut), &c); err != nil {
		return parseFailure(err), nil
	}

	names := make([]string, 0, len(files))
	for name := range files {
		if name == "/COMMIT_MSG" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Files in CL %s (Patch Set %d):\n", changeID, c.CurrentRevisionNumber)
	for _, name := range names {
		f := files[name]
		fmt.Fprintf(&b, "\n  [%s] %s (+%d, -%d)", statusLetter(f.Status), name, f.LinesInserted, f.LinesDeleted)
	}
	return b.String(), nil
}

// statusLetter maps a Gerrit file status to its single-letter form.
// Gerrit omits the status for modified files.
func statusLetter(status string) string {
	if status == "" {
		return "M"
	}
	return strings.ToUpper(status[:1])
}
