package models

import "github.com/vit0-9/recon_api/pkg/recon"

// InvestigationResponse wraps a full per-target investigation report.
type InvestigationResponse struct {
	Report recon.Report `json:"report"`
	Error  string       `json:"error,omitempty"`
}
