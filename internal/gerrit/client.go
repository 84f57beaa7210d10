// Package gerrit issues authenticated requests against a Gerrit
// instance by driving an external command-line HTTP client. It resolves
// the authentication scheme for a target host from the registry, builds
// the command invocation, executes it with a bounded timeout, and
// normalizes the response.
package gerrit

import (
	"context"
	"time"

	"gerritctl/internal/hostcfg"
)

// Execer runs one external command invocation.
type Execer interface {
	Run(ctx context.Context, argv []string) (string, error)
}

// Client resolves authentication and executes Gerrit requests. Each
// request reloads the host registry, so configuration edits take effect
// without restarting; calls share no mutable state and are safe to
// issue concurrently.
type Client struct {
	Exec Execer
	// LoadHosts returns the registry. Defaults to hostcfg.Load.
	LoadHosts func() (*hostcfg.Config, error)
}

// NewClient returns a Client that runs curl invocations with the given
// timeout (DefaultTimeout when zero).
func NewClient(timeout time.Duration) *Client {
	return &Client{Exec: Runner{Timeout: timeout}}
}

// Do resolves the authentication prefix for targetURL, runs the
// external HTTP client with args appended, and returns the response
// body with the Gerrit JSON envelope stripped. args must already
// include the request URL. Callers are responsible for parsing the
// result and treating parse failure as a distinct, recoverable error.
func (c *Client) Do(ctx context.Context, args []string, targetURL string) (string, error) {
	load := c.LoadHosts
	if load == nil {
		load = hostcfg.Load
	}
	cfg, err := load()
	if err != nil {
		return "", err
	}

	argv, err := BuildInvocation(targetURL, cfg.GerritHosts, args)
	if err != nil {
		return "", err
	}

	out, err := c.Exec.Run(ctx, argv)
	if err != nil {
		return "", err
	}
	return StripEnvelope(out), nil
}
