package models

// ResolveRedirectResponse defines the JSON output of redirect resolution.
// FinalURL always holds a usable URL; on failure it equals the normalized
// input and Error explains what happened.
type ResolveRedirectResponse struct {
	OriginalURL SafeURLString `json:"original_url"`
	FinalURL    SafeURLString `json:"final_url"`
	Redirected  bool          `json:"redirected"`
	StatusCode  int           `json:"status_code,omitempty"`
	Error       string        `json:"error,omitempty"`
}

// ExtractDomainResponse is the output of domain extraction from a URL.
type ExtractDomainResponse struct {
	URL               SafeURLString `json:"url"`
	Domain            string        `json:"domain,omitempty"`
	RegistrableDomain string        `json:"registrable_domain,omitempty"`
	Error             string        `json:"error,omitempty"`
}
