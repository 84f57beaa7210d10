package terminal

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr captures stderr output during the execution of f.
func captureStderr(f func()) string {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	f()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestLog_AllStyles(t *testing.T) {
	// Disable colors for predictable output
	DisableColors()
	defer EnableColors()

	for _, style := range []Style{StyleInfo, StyleSuccess, StyleWarning, StyleError, StyleDim} {
		t.Run(string(style), func(t *testing.T) {
			output := captureStderr(func() {
				Log("test message", style)
			})

			if !strings.Contains(output, "[gerrit]") {
				t.Errorf("expected tag in output, got %q", output)
			}
			if !strings.Contains(output, "test message") {
				t.Errorf("expected message in output, got %q", output)
			}
			if !strings.HasSuffix(output, "\n") {
				t.Error("expected newline at end of output")
			}
		})
	}
}

func TestLogf(t *testing.T) {
	DisableColors()
	defer EnableColors()

	output := captureStderr(func() {
		Logf(StyleInfo, "formatted %s %d", "test", 42)
	})

	if !strings.Contains(output, "formatted test 42") {
		t.Errorf("expected formatted message, got %q", output)
	}
}

func TestLog_WithColors(t *testing.T) {
	EnableColors()

	output := captureStderr(func() {
		Log("colored message", StyleSuccess)
	})

	// Should contain ANSI escape codes
	if !strings.Contains(output, "\033[") {
		t.Errorf("expected ANSI codes in colored output, got %q", output)
	}
	if !strings.Contains(output, "colored message") {
		t.Errorf("expected message in output, got %q", output)
	}
}

func TestLog_EmptyMessage(t *testing.T) {
	DisableColors()
	defer EnableColors()

	output := captureStderr(func() {
		Log("", StyleInfo)
	})

	// Should still output the tag with empty message
	if !strings.Contains(output, "[gerrit]") {
		t.Errorf("expected tag in output even for empty message, got %q", output)
	}
}
