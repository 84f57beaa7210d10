package change

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// FileDiff fetches the diff for one file in the current patch set. The
// patch endpoint returns base64 text with no JSON envelope; the decoded
// unified diff is returned.
func FileDiff(ctx context.Context, d Doer, baseURL, changeID, filePath string) (string, error) {
	u := changeURL(baseURL, changeID, "revisions/current/patch") + "?path=" + url.QueryEscape(filePath)
	out, err := d.Do(ctx, []string{u}, baseURL)
	if err != nil {
		return "", err
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(out))
	if err != nil {
		return "", fmt.Errorf("failed to decode patch response for %s: %w", filePath, err)
	}
	return string(decoded), nil
}
