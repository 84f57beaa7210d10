package main

import (
	"reflect"
	"testing"

	"gerritctl/internal/change"
)

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    map[string]int
		wantErr bool
	}{
		{"empty", nil, nil, false},
		{"single", []string{"Code-Review=2"}, map[string]int{"Code-Review": 2}, false},
		{"plus prefix", []string{"Code-Review=+1"}, map[string]int{"Code-Review": 1}, false},
		{"negative", []string{"Code-Review=-2"}, map[string]int{"Code-Review": -2}, false},
		{"multiple", []string{"Code-Review=1", "Verified=1"}, map[string]int{"Code-Review": 1, "Verified": 1}, false},
		{"missing equals", []string{"Code-Review"}, nil, true},
		{"empty name", []string{"=1"}, nil, true},
		{"non-integer value", []string{"Code-Review=yes"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLabels(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLabels(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseLabels(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseComments(t *testing.T) {
	tests := []struct {
		name    string
		in      []string
		want    []change.ReviewComment
		wantErr bool
	}{
		{"empty", nil, nil, false},
		{
			"single",
			[]string{"main.go:42:use errors.Is"},
			[]change.ReviewComment{{FilePath: "main.go", LineNumber: 42, Message: "use errors.Is"}},
			false,
		},
		{
			"message with colons",
			[]string{"main.go:7:see https://example.com/doc"},
			[]change.ReviewComment{{FilePath: "main.go", LineNumber: 7, Message: "see https://example.com/doc"}},
			false,
		},
		{"missing parts", []string{"main.go:42"}, nil, true},
		{"empty file", []string{":42:msg"}, nil, true},
		{"non-integer line", []string{"main.go:abc:msg"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseComments(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseComments(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseComments(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
