package gerrit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"gerritctl/internal/hostcfg"
)

// DefaultTimeout bounds a single external HTTP client invocation.
const DefaultTimeout = 30 * time.Second

// BuildInvocation assembles the full command for a request: the
// authentication prefix for targetURL followed by the caller-supplied
// arguments. args must already include the request URL.
func BuildInvocation(targetURL string, hosts []hostcfg.Host, args []string) ([]string, error) {
	prefix, err := AuthPrefix(targetURL, hosts)
	if err != nil {
		return nil, err
	}
	return append(prefix, args...), nil
}

// Runner executes one external HTTP client invocation per call. The
// zero value uses DefaultTimeout.
type Runner struct {
	Timeout time.Duration
}

// Run spawns argv as a child process and returns its decoded stdout.
// Arguments are passed as a discrete list end to end; nothing is ever
// joined into a shell string, so metacharacters in query values stay
// inert. A non-zero exit yields a *CommandError carrying the exit code
// and stderr verbatim; exceeding the timeout yields ErrTimeout. No
// retries are performed at this layer.
func (r Runner) Run(ctx context.Context, argv []string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("empty command invocation")
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s did not complete within %s", ErrTimeout, argv[0], timeout)
		}
		return "", ctx.Err()
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &CommandError{ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return "", fmt.Errorf("failed to run %s: %w", argv[0], err)
	}

	return stdout.String(), nil
}
