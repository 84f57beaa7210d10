package gerrit

import (
	"errors"
	"fmt"
)

// ErrInvalidAuthConfig indicates a host's authentication config is
// missing mandatory fields or names an unknown scheme. This never
// degrades to an anonymous request: it is a configuration bug, not a
// transient environment condition.
var ErrInvalidAuthConfig = errors.New("invalid authentication config")

// ErrTimeout indicates the external HTTP client did not complete within
// the configured timeout.
var ErrTimeout = errors.New("curl command timed out")

// CommandError reports a non-zero exit from the external HTTP client.
// Stderr is carried verbatim so callers can surface recognizable
// failure text (for example authentication rejections) to the user.
type CommandError struct {
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("curl command failed with exit code %d.\nSTDERR:\n%s", e.ExitCode, e.Stderr)
}
