package models

import "github.com/vit0-9/recon_api/pkg/utils"

// CleanURLRequest contains the target URL to scrub before investigation.
type CleanURLRequest struct {
	URL string `json:"url" binding:"required,url" example:"https://example.com?utm_source=google"`
}

// DetailedCleanURLResponse defines the JSON output with details of removed params.
type DetailedCleanURLResponse struct {
	OriginalURL   SafeURLString            `json:"original_url"`
	CleanedURL    SafeURLString            `json:"cleaned_url"`
	RemovedParams []utils.RemovedParamInfo `json:"removed_params,omitempty"`
	Message       string                   `json:"message,omitempty"`
}
