package change

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ReviewComment is one inline comment to post.
type ReviewComment struct {
	FilePath   string
	LineNumber int
	Message    string
}

// ReviewInput is the content of a review: any combination of inline
// comments, label votes, and a top-level message. At least one of the
// three must be present.
type ReviewInput struct {
	Comments []ReviewComment
	Labels   map[string]int
	Message  string
}

type draftComment struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type reviewPayload struct {
	Comments map[string][]draftComment `json:"comments,omitempty"`
	Labels   map[string]int            `json:"labels,omitempty"`
	Message  string                    `json:"message,omitempty"`
}

// PostReview posts a review on the current patch set of a change.
func PostReview(ctx context.Context, d Doer, baseURL, changeID string, in ReviewInput) (string, error) {
	if len(in.Comments) == 0 && len(in.Labels) == 0 && in.Message == "" {
		return "", errors.New("labels, comments, and message cannot all be empty")
	}

	payload := reviewPayload{Labels: in.Labels, Message: in.Message}
	if len(in.Comments) > 0 {
		payload.Comments = make(map[string][]draftComment)
		for _, c := range in.Comments {
			payload.Comments[c.FilePath] = append(payload.Comments[c.FilePath], draftComment{Line: c.LineNumber, Message: c.Message})
		}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode review payload: %w", err)
	}

	args := []string{
		"-X", "POST",
		"-H", "Content-Type: application/json",
		"--data", string(body),
		changeURL(baseURL, changeID, "revisions/current/review"),
	}
	out, err := d.Do(ctx, args, baseURL)
	if err != nil {
		return "", err
	}

	var resp map[string]any
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		return parseFailure(err), nil
	}
	if msg, found := resp["error"]; found {
		return fmt.Sprintf("Failed to post review on CL %s: %v", changeID, msg), nil
	}
	return fmt.Sprintf("Successfully posted review on CL %s.", changeID), nil
}
