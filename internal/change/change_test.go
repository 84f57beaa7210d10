package change

import (
	"context"
	"testing"
)

// fakeDoer records requests and replays canned responses in order. The
// last response repeats if more requests arrive than responses were
// configured.
type fakeDoer struct {
	calls     [][]string
	targets   []string
	responses []string
	err       error
}

func (f *fakeDoer) Do(_ context.Context, args []string, targetURL string) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, args)
	f.targets = append(f.targets, targetURL)
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return f.responses[i], nil
}

func (f *fakeDoer) lastArgs(t *testing.T) []string {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatal("no requests were issued")
	}
	return f.calls[len(f.calls)-1]
}

const testBase = "https://fuchsia-review.googlesource.com"
