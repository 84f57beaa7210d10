package main

import (
	"context"

	"github.com/spf13/cobra"

	"gerritctl/internal/change"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <change-id>",
		Short: "Show a summary of a CL",
		Long:  "Show the subject, owner, status, reviewers, votes, and recent messages of a change.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.Details(ctx, d, baseURL, args[0])
			})
		},
	}
}

func newBugsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bugs <change-id>",
		Short: "Extract bug IDs referenced in a CL's commit message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.Bugs(ctx, d, baseURL, args[0])
			})
		},
	}
}
