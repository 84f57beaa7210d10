package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gerritctl/internal/hostcfg"
	"gerritctl/internal/terminal"
)

func newHostsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Manage the Gerrit host registry",
		Long:  "View and validate the host registry that maps Gerrit instances to authentication schemes.",
	}

	cmd.AddCommand(newHostsListCmd())
	cmd.AddCommand(newHostsValidateCmd())

	return cmd
}

func newHostsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Display the configured Gerrit hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := hostcfg.Load()
			if err != nil {
				return err
			}

			fmt.Printf("Registry: %s\n", hostcfg.Path())
			if cfg.DefaultGerritBaseURL != "" {
				fmt.Printf("Default Gerrit: %s\n", cfg.DefaultGerritBaseURL)
			}
			if len(cfg.GerritHosts) == 0 {
				fmt.Println("\nNo hosts configured; all requests are anonymous.")
				return nil
			}

			fmt.Println()
			for _, h := range cfg.GerritHosts {
				name := h.Name
				if name == "" {
					name = hostcfg.Hostname(h.ExternalURL)
				}
				auth := string(h.Auth.Type)
				if auth == "" {
					auth = "anonymous"
				}
				fmt.Printf("  %-20s %s (auth: %s)\n", name, h.ExternalURL, auth)
				if h.InternalURL != "" {
					fmt.Printf("  %-20s internal: %s\n", "", h.InternalURL)
				}
			}

			return nil
		},
	}
}

func newHostsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the host registry",
		Long:  "Load the registry and check every host entry for missing URLs or incomplete authentication settings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !terminal.IsStdoutTTY() {
				terminal.DisableColors()
			}

			cfg, err := hostcfg.Load()
			if err != nil {
				return err
			}

			var errCount int
			for i, h := range cfg.GerritHosts {
				label := h.Name
				if label == "" {
					label = fmt.Sprintf("entry %d", i+1)
				}
				for _, problem := range validateHost(h) {
					terminal.Logf(terminal.StyleError, "%s: %s", label, problem)
					errCount++
				}
			}

			if errCount > 0 {
				return fmt.Errorf("registry has %d error(s)", errCount)
			}

			terminal.Log("Registry is valid.", terminal.StyleSuccess)
			return nil
		},
	}
}

// validateHost returns the problems with one registry entry.
func validateHost(h hostcfg.Host) []string {
	var problems []string

	if h.ExternalURL == "" {
		problems = append(problems, "missing external_url")
	} else if hostcfg.Hostname(h.ExternalURL) == "" {
		problems = append(problems, fmt.Sprintf("external_url %q has no hostname", h.ExternalURL))
	}
	if h.InternalURL != "" && hostcfg.Hostname(h.InternalURL) == "" {
		problems = append(problems, fmt.Sprintf("internal_url %q has no hostname", h.InternalURL))
	}

	switch h.Auth.Type {
	case "", hostcfg.SchemeGobCurl:
	case hostcfg.SchemeHTTPBasic:
		if h.Auth.Username == "" {
			problems = append(problems, "http_basic auth requires username")
		}
		if h.Auth.AuthToken == "" {
			problems = append(problems, "http_basic auth requires auth_token")
		}
	case hostcfg.SchemeGitCookies:
		// An absent cookie file degrades to an anonymous request, so
		// only the field itself is validated here.
		if h.Auth.GitcookiesPath == "" {
			problems = append(problems, "git_cookies auth requires gitcookies_path")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown auth type %q", h.Auth.Type))
	}

	return problems
}
