package models

import "github.com/vit0-9/recon_api/pkg/utils"

// DNSLookupResponse is the output of a DNS lookup. Records is keyed by
// record type; types missing from the map were not queried because an
// earlier type returned NXDOMAIN.
type DNSLookupResponse struct {
	Domain  string                        `json:"domain"`
	Records map[string]utils.RecordResult `json:"records"`
}
