package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gerritctl/internal/change"
)

func newReviewCmd() *cobra.Command {
	var (
		message  string
		labels   []string
		comments []string
	)

	cmd := &cobra.Command{
		Use:   "review <change-id>",
		Short: "Post a review on a CL",
		Long: `Post a review with any combination of a message, votes, and inline
comments.

Examples:
  gerritctl review 12345 --message "LGTM"
  gerritctl review 12345 --label Code-Review=+1 --label Verified=1
  gerritctl review 12345 --comment "main.go:42:prefer errors.Is here"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := change.ReviewInput{Message: message}

			parsedLabels, err := parseLabels(labels)
			if err != nil {
				return err
			}
			input.Labels = parsedLabels

			parsedComments, err := parseComments(comments)
			if err != nil {
				return err
			}
			input.Comments = parsedComments

			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.PostReview(ctx, d, baseURL, args[0], input)
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "",
		"Review cover message")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil,
		"Vote as NAME=VALUE, e.g. Code-Review=+1 (repeatable)")
	cmd.Flags().StringArrayVarP(&comments, "comment", "c", nil,
		"Inline comment as FILE:LINE:MESSAGE (repeatable)")

	return cmd
}

func newAddReviewerCmd() *cobra.Command {
	var state string

	cmd := &cobra.Command{
		Use:   "add-reviewer <change-id> <reviewer>",
		Short: "Add a reviewer or CC to a CL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.AddReviewer(ctx, d, baseURL, args[0], args[1], state)
			})
		},
	}

	cmd.Flags().StringVarP(&state, "state", "s", "",
		"Reviewer state: REVIEWER or CC (default: REVIEWER)")

	return cmd
}

// parseLabels converts NAME=VALUE flag values into a vote map. A leading
// + on the value is accepted, matching Gerrit's label notation.
func parseLabels(raw []string) (map[string]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	labels := make(map[string]int, len(raw))
	for _, l := range raw {
		name, value, ok := strings.Cut(l, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid label %q: expected NAME=VALUE", l)
		}
		n, err := strconv.Atoi(strings.TrimPrefix(value, "+"))
		if err != nil {
			return nil, fmt.Errorf("invalid label %q: value must be an integer", l)
		}
		labels[name] = n
	}
	return labels, nil
}

// parseComments converts FILE:LINE:MESSAGE flag values into inline
// comments. The message may itself contain colons.
func parseComments(raw []string) ([]change.ReviewComment, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	comments := make([]change.ReviewComment, 0, len(raw))
	for _, c := range raw {
		parts := strings.SplitN(c, ":", 3)
		if len(parts) != 3 || parts[0] == "" {
			return nil, fmt.Errorf("invalid comment %q: expected FILE:LINE:MESSAGE", c)
		}
		line, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid comment %q: line must be an integer", c)
		}
		comments = append(comments, change.ReviewComment{
			FilePath:   parts[0],
			LineNumber: line,
			Message:    parts[2],
		})
	}
	return comments, nil
}
