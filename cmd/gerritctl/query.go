package main

import (
	"context"

	"github.com/spf13/cobra"

	"gerritctl/internal/change"
)

func newQueryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "query <gerrit-query>",
		Short: "Search for changes matching a Gerrit query",
		Long: `Search for changes using Gerrit query syntax.

Examples:
  gerritctl query "status:open project:foo"
  gerritctl query "owner:self is:wip" --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.Query(ctx, d, baseURL, args[0], limit)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", change.DefaultQueryLimit,
		"Maximum number of changes to return")

	return cmd
}

func newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent <user>",
		Short: "Show the most recent CL owned by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(func(ctx context.Context, d change.Doer, baseURL string) (string, error) {
				return change.MostRecent(ctx, d, baseURL, args[0])
			})
		},
	}
}
