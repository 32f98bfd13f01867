package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare domain gets http scheme", "example.com", "http://example.com"},
		{"http passes through", "http://example.com", "http://example.com"},
		{"https passes through", "https://example.com/path?q=1", "https://example.com/path?q=1"},
		{"ftp passes through", "ftp://files.example.com", "ftp://files.example.com"},
		{"unknown scheme is treated as a host", "gopher://example.com", "http://gopher://example.com"},
		{"host with port", "example.com:8080", "http://example.com:8080"},
		{"empty input still gets a scheme", "", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeURL(tt.input))
		})
	}
}

func TestNormalizeURLIsIdempotent(t *testing.T) {
	inputs := []string{"example.com", "https://example.com", "bit.ly/abc"}
	for _, input := range inputs {
		once := NormalizeURL(input)
		assert.Equal(t, once, NormalizeURL(once), "normalizing twice must not change %q", input)
	}
}
