package models

// DetectedTechnology holds information about a single detected technology.
type DetectedTechnology struct {
	Name        string   `json:"name"`
	Version     string   `json:"version,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Description string   `json:"description,omitempty"`
	Website     string   `json:"website,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	CPE         string   `json:"cpe,omitempty"`
}

// StackAnalyzerResponse is the output of a technology stack analysis.
type StackAnalyzerResponse struct {
	RequestURL   string               `json:"request_url"`
	FinalURL     string               `json:"final_url"`
	Technologies []DetectedTechnology `json:"technologies"`
	Error        string               `json:"error,omitempty"`
}
