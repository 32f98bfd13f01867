package utils

import (
	"context"
	"io"
	"log"
	"net/http"
	"time"
)

// RedirectResolver follows HTTP redirects for investigation targets. The
// timeout and identifying User-Agent are supplied at construction rather
// than read from package constants.
type RedirectResolver struct {
	client    *http.Client
	userAgent string
}

func NewRedirectResolver(timeout time.Duration, userAgent string) *RedirectResolver {
	return &RedirectResolver{
		client:    NewHTTPClient(timeout),
		userAgent: userAgent,
	}
}

// Resolution describes the outcome of following redirects for one target.
// FinalURL always holds a usable URL: the landing URL on success, the
// normalized input when the request failed.
type Resolution struct {
	OriginalURL string `json:"original_url"`
	FinalURL    string `json:"final_url"`
	StatusCode  int    `json:"status_code,omitempty"`
	Redirected  bool   `json:"redirected"`
	Error       string `json:"error,omitempty"`
}

// Resolve issues a single GET with redirect following and reports where the
// target landed. Network failures never escape this boundary: the target is
// assumed not to redirect and the normalized input is returned.
func (r *RedirectResolver) Resolve(ctx context.Context, rawURL string) Resolution {
	normalized := NormalizeURL(rawURL)
	res := Resolution{OriginalURL: rawURL, FinalURL: normalized}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, normalized, nil)
	if err != nil {
		log.Printf("Could not build request for %s: %v. Assuming no redirect.", normalized, err)
		res.Error = err.Error()
		return res
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("Redirect resolution failed for %s: %v. Assuming no redirect.", normalized, err)
		res.Error = err.Error()
		return res
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	res.FinalURL = resp.Request.URL.String()
	res.StatusCode = resp.StatusCode
	res.Redirected = res.FinalURL != normalized
	if res.Redirected {
		log.Printf("%s redirected to %s", normalized, res.FinalURL)
	}
	return res
}
