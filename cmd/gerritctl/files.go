package main

import (
	"context"

	"github.com/spf13/cobra"

	"gerritctl/internal/change"
)

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files <change-id>",
		Short: "List files touched by the current patch set of a CL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.ListFiles(ctx, d, baseURL, args[0])
			})
		},
	}
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <change-id> <file-path>",
		Short: "Show the current patch set diff for one file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.FileDiff(ctx, d, baseURL, args[0], args[1])
			})
		},
	}
}

func newCommentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comments <change-id>",
		Short: "List review comments on a CL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.ListComments(ctx, d, baseURL, args[0])
			})
		},
	}
}
