package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gerritctl/internal/change"
	"gerritctl/internal/gerrit"
	"gerritctl/internal/hostcfg"
	"gerritctl/internal/terminal"
)

// Exit codes.
const (
	exitSuccess     = 0
	exitError       = 2
	exitInterrupted = 130
)

// exitCodeError is a wrapper type for returning exit codes via error interface.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	switch e.code {
	case exitError:
		return "command failed with error"
	case exitInterrupted:
		return "command was interrupted"
	default:
		return fmt.Sprintf("exit code %d", e.code)
	}
}

// operation runs against a resolved Gerrit base URL and returns the
// text to print.
type operation func(ctx context.Context, d change.Doer, baseURL string) (string, error)

// runOp resolves the target Gerrit instance, executes op against it
// with signal-aware cancellation, and prints the result to stdout.
func runOp(op operation) error {
	// Disable colors if stdout is not a TTY
	if !terminal.IsStdoutTTY() {
		terminal.DisableColors()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr)
		terminal.Log("Interrupted, shutting down...", terminal.StyleWarning)
		cancel()
	}()

	base, err := resolveBase()
	if err != nil {
		return err
	}

	out, err := op(ctx, gerrit.NewClient(timeout), base)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return exitCodeError{code: exitInterrupted}
		}
		return err
	}

	fmt.Println(out)
	return nil
}

// resolveBase picks the Gerrit base URL (--gerrit, then GERRIT_BASE_URL,
// then the registry default) and normalizes it against the registry so
// internal aliases map to their external form.
func resolveBase() (string, error) {
	base, err := hostcfg.BaseURL(gerritURL)
	if err != nil {
		return "", err
	}
	cfg, err := hostcfg.Load()
	if err != nil {
		return "", err
	}
	return hostcfg.Normalize(base, cfg.GerritHosts), nil
}
