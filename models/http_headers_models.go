package models

// HTTPHeadersResponse is the output for HTTP header inspection.
type HTTPHeadersResponse struct {
	RequestURL string              `json:"request_url"`
	FinalURL   string              `json:"final_url,omitempty"`
	StatusCode int                 `json:"status_code,omitempty"`
	Status     string              `json:"status,omitempty"`
	Headers    map[string][]string `json:"headers,omitempty"`
	Error      string              `json:"error,omitempty"`
}
