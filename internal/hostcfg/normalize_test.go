package hostcfg

import "testing"

func TestNormalize(t *testing.T) {
	hosts := []Host{
		{
			Name:        "Fuchsia",
			InternalURL: "https://fuchsia-review.git.private.corporation.com/",
			ExternalURL: "https://fuchsia-review.googlesource.com/",
		},
	}

	tests := []struct {
		name      string
		reference string
		want      string
	}{
		{"bare internal hostname", "fuchsia-review.git.private.corporation.com", "https://fuchsia-review.googlesource.com"},
		{"internal with scheme", "https://fuchsia-review.git.private.corporation.com", "https://fuchsia-review.googlesource.com"},
		{"internal with http scheme", "http://fuchsia-review.git.private.corporation.com", "https://fuchsia-review.googlesource.com"},
		{"internal with trailing slash", "https://fuchsia-review.git.private.corporation.com/", "https://fuchsia-review.googlesource.com"},
		{"bare external hostname", "fuchsia-review.googlesource.com", "https://fuchsia-review.googlesource.com"},
		{"external with trailing slash", "https://fuchsia-review.googlesource.com/", "https://fuchsia-review.googlesource.com"},
		{"unknown host passthrough", "another-gerrit.com", "https://another-gerrit.com"},
		{"unknown host http upgraded", "http://another-gerrit.com", "https://another-gerrit.com"},
		{"unknown host https unchanged", "https://another-gerrit.com", "https://another-gerrit.com"},
		{"unknown host with port", "another-gerrit.com:8080", "https://another-gerrit.com:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.reference, hosts); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.reference, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmptyRegistry(t *testing.T) {
	if got := Normalize("my-gerrit.com/", nil); got != "https://my-gerrit.com" {
		t.Errorf("Normalize = %q, want https://my-gerrit.com", got)
	}
}

func TestNormalizeConfiguredURLWithoutScheme(t *testing.T) {
	hosts := []Host{{InternalURL: "gerrit.internal", ExternalURL: "https://gerrit.example.com"}}
	if got := Normalize("gerrit.internal", hosts); got != "https://gerrit.example.com" {
		t.Errorf("Normalize = %q, want https://gerrit.example.com", got)
	}
}
