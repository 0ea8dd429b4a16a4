package fetch

import (
	"testing"
)

func TestIsAbsoluteURL(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"https://example.com/path", true},
		{"http://example.com", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"ws://example.com", true},
		{"//example.com/protocol-relative", true},
		{"/users", false},
		{"users/1", false},
		{"", false},
		{"mailto:someone@example.com", false},
		{"example.com/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := isAbsoluteURL(tt.url); got != tt.expected {
				t.Errorf("isAbsoluteURL(%q) = %v, want %v", tt.url, got, tt.expected)
			}
		})
	}
}

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		path     string
		expected string
	}{
		{
			name:     "Trailing and leading slashes",
			base:     "https://h/v2/",
			path:     "/a",
			expected: "https://h/v2/a",
		},
		{
			name:     "No slashes at join",
			base:     "https://h/v2",
			path:     "a",
			expected: "https://h/v2/a",
		},
		{
			name:     "Multiple slashes collapsed",
			base:     "https://h/v2///",
			path:     "///a",
			expected: "https://h/v2/a",
		},
		{
			name:     "Empty path",
			base:     "https://h",
			path:     "",
			expected: "https://h/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinURL(tt.base, tt.path); got != tt.expected {
				t.Errorf("joinURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.expected)
			}
		})
	}
}

func TestAppendQuery(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		encoded  string
		expected string
	}{
		{
			name:     "No existing query",
			url:      "https://h/a",
			encoded:  "x=1",
			expected: "https://h/a?x=1",
		},
		{
			name:     "Existing query",
			url:      "https://h/a?y=2",
			encoded:  "x=1",
			expected: "https://h/a?y=2&x=1",
		},
		{
			name:     "URL ends in question mark",
			url:      "https://h/a?",
			encoded:  "x=1",
			expected: "https://h/a?x=1",
		},
		{
			name:     "URL ends in ampersand",
			url:      "https://h/a?y=2&",
			encoded:  "x=1",
			expected: "https://h/a?y=2&x=1",
		},
		{
			name:     "Empty encoded string is a no-op",
			url:      "https://h/a",
			encoded:  "",
			expected: "https://h/a",
		},
		{
			name:     "Empty encoded string with existing query",
			url:      "https://h/a?y=2",
			encoded:  "",
			expected: "https://h/a?y=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := appendQuery(tt.url, tt.encoded); got != tt.expected {
				t.Errorf("appendQuery(%q, %q) = %q, want %q", tt.url, tt.encoded, got, tt.expected)
			}
		})
	}
}
