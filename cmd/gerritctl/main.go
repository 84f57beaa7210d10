// Package main provides the CLI entry point for gerritctl.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gerritctl/internal/gerrit"
)

var version = "dev"

var (
	gerritURL string
	timeout   time.Duration
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := &cobra.Command{
		Use:   "gerritctl",
		Short: "Command-line client for Gerrit code review",
		Long: `Query and manipulate Gerrit changes from the command line.

Requests are authenticated per host via the registry file
(GERRIT_CONFIG_PATH, default ~/.config/gerritctl/hosts.yaml).
The target instance is resolved from --gerrit, GERRIT_BASE_URL, or the
registry's default_gerrit_base_url, in that order.

Exit codes:
  0 - Success
  2 - Error
  130 - Interrupted`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVarP(&gerritURL, "gerrit", "g", "",
		"Gerrit base URL (default: GERRIT_BASE_URL, then registry default)")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", gerrit.DefaultTimeout,
		"Timeout per request")

	rootCmd.AddCommand(
		newQueryCmd(),
		newRecentCmd(),
		newShowCmd(),
		newFilesCmd(),
		newDiffCmd(),
		newCommentsCmd(),
		newReviewCmd(),
		newAddReviewerCmd(),
		newBugsCmd(),
		newHostsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		// Check if this is an exit code wrapper (not a real error)
		if exitErr, ok := err.(exitCodeError); ok {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitError
	}

	return 0
}
