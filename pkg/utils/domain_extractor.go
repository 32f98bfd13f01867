package utils

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ExtractDomain derives a bare hostname from a resolved URL: the authority
// component (host plus optional port) with any leading "www." stripped.
// An empty return means no domain could be derived; callers must check for
// it before running lookups.
func ExtractDomain(resolvedURL string) string {
	parsed, err := url.Parse(NormalizeURL(resolvedURL))
	if err != nil {
		log.Printf("Could not parse %q for domain extraction: %v", resolvedURL, err)
		return ""
	}
	host := strings.TrimPrefix(parsed.Host, "www.")
	if host == "" {
		log.Printf("URL %q has no host component", resolvedURL)
	}
	return host
}

// RegistrableDomain reduces a hostname to its eTLD+1, the unit registries
// key WHOIS data on. Ports are dropped and the host is punycoded first so
// internationalized names query correctly.
func RegistrableDomain(host string) (string, error) {
	if strings.Contains(host, ":") {
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
	}
	ascii, err := idna.Lookup.ToASCII(strings.ToLower(strings.TrimSuffix(host, ".")))
	if err != nil {
		return "", fmt.Errorf("cannot normalize host %q: %w", host, err)
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return "", fmt.Errorf("no registrable domain in %q: %w", host, err)
	}
	return registrable, nil
}
