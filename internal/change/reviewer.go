package change

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
)

// validReviewerStates are the reviewer states Gerrit accepts.
var validReviewerStates = []string{"REVIEWER", "CC"}

type reviewerPayload struct {
	Reviewer string `json:"reviewer"`
	State    string `json:"state"`
}

// AddReviewer adds an account to a change as a reviewer or CC. State
// defaults to REVIEWER; an invalid state fails locally without issuing
// a request.
func AddReviewer(ctx context.Context, d Doer, baseURL, changeID, reviewer, state string) (string, error) {
	if state == "" {
		state = "REVIEWER"
	}
	if !slices.Contains(validReviewerStates, state) {
		return fmt.Sprintf("Failed to add %s: Invalid state %q. Must be one of REVIEWER, CC.", reviewer, state), nil
	}

	body, err := json.Marshal(reviewerPayload{Reviewer: reviewer, State: state})
	if err != nil {
		return "", fmt.Errorf("failed to encode reviewer payload: %w", err)
	}

	args := []string{
		"-X", "POST",
		"-H", "Content-Type: application/json",
		"--data", string(body),
		changeURL(baseURL, changeID, "reviewers"),
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
		return fmt.Sprintf("Failed to add %s: %v", reviewer, msg), nil
	}
	return fmt.Sprintf("Successfully added %s as a %s to CL %s.", reviewer, state, changeID), nil
}
