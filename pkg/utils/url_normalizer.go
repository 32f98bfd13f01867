package utils

import "strings"

var recognizedSchemes = []string{"http://", "https://", "ftp://"}

// NormalizeURL guarantees a target has a scheme so url.Parse treats its
// authority as a host instead of a path. Targets that already carry a
// recognized scheme pass through unchanged; nothing else is validated here,
// malformed input is allowed to fail downstream.
func NormalizeURL(raw string) string {
	for _, scheme := range recognizedSchemes {
		if strings.HasPrefix(raw, scheme) {
			return raw
		}
	}
	return "http://" + raw
}
