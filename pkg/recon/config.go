package recon

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultDNSTimeout  = 5 * time.Second
	defaultUserAgent   = "recon-api/1.0 (+https://github.com/vit0-9/recon_api)"
)

// Config carries the investigation settings threaded explicitly into each
// component. An empty DNSServer means the system resolver configuration is
// loaded at construction time.
type Config struct {
	HTTPTimeout time.Duration
	DNSTimeout  time.Duration
	UserAgent   string
	DNSServer   string // host:port of the resolver to query
}

func DefaultConfig() Config {
	return Config{
		HTTPTimeout: defaultHTTPTimeout,
		DNSTimeout:  defaultDNSTimeout,
		UserAgent:   defaultUserAgent,
	}
}

// ConfigFromEnv layers RECON_* environment overrides onto the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("RECON_DNS_SERVER"); v != "" {
		cfg.DNSServer = v
	}
	if v := os.Getenv("RECON_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if secs := envSeconds("RECON_HTTP_TIMEOUT"); secs > 0 {
		cfg.HTTPTimeout = secs
	}
	if secs := envSeconds("RECON_DNS_TIMEOUT"); secs > 0 {
		cfg.DNSTimeout = secs
	}
	return cfg
}

func envSeconds(name string) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
