// Package change implements the high-level Gerrit operations: querying
// changes, inspecting files, diffs and comments, posting reviews, and
// managing reviewers. Operations format their results as human-readable
// text; transport and authentication live in the gerrit package.
package change

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Doer issues one authenticated Gerrit request and returns the response
// body with the JSON envelope stripped. *gerrit.Client satisfies this.
type Doer interface {
	Do(ctx context.Context, args []string, targetURL string) (string, error)
}

type accountInfo struct {
	AccountID int    `json:"_account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

type approvalInfo struct {
	AccountID int `json:"_account_id"`
	Value     int `json:"value"`
}

type labelInfo struct {
	All []approvalInfo `json:"all"`
}

type changeMessage struct {
	RevisionNumber int         `json:"_revision_number"`
	Date           string      `json:"date"`
	Author         accountInfo `json:"author"`
	Message        string      `json:"message"`
}

type changeInfo struct {
	Number                int                      `json:"_number"`
	Subject               string                   `json:"subject"`
	Status                string                   `json:"status"`
	WorkInProgress        bool                     `json:"work_in_progress"`
	Updated               string                   `json:"updated"`
	Owner                 accountInfo              `json:"owner"`
	Reviewers             map[string][]accountInfo `json:"reviewers"`
	Labels                map[string]labelInfo     `json:"labels"`
	Messages              []changeMessage          `json:"messages"`
	CurrentRevisionNumber int                      `json:"current_revision_number"`
}

// formatChangeLine renders one change as "123: subject", tagging
// work-in-progress changes.
func formatChangeLine(c changeInfo) string {
	subject := c.Subject
	if c.WorkInProgress {
		subject = "[WIP] " + subject
	}
	return fmt.Sprintf("%d: %s", c.Number, subject)
}

// parseFailure is the recoverable message returned when Gerrit sends a
// body that is not valid JSON. Callers surface it instead of failing.
func parseFailure(err error) string {
	return fmt.Sprintf("Failed to parse JSON response: %v", err)
}

// changesURL builds a change query URL. The query value is URL-encoded
// here and travels as part of a single argv element from here on.
func changesURL(baseURL, query string, limit int) string {
	v := url.Values{}
	v.Set("q", query)
	v.Set("n", strconv.Itoa(limit))
	return baseURL + "/changes/?" + v.Encode()
}

// changeURL builds the URL for one change resource, with an optional
// sub-path below the change.
func changeURL(baseURL, changeID, subpath string) string {
	u := baseURL + "/changes/" + url.PathEscape(changeID)
	if subpath != "" {
		u += "/" + subpath
	}
	return u
}
