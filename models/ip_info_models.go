package models

// IPInfoResponse is the output for IP information.
type IPInfoResponse struct {
	IPAddress          string   `json:"ip_address"`
	IsValid            bool     `json:"is_valid"`
	Version            string   `json:"version,omitempty"`
	IsLoopback         bool     `json:"is_loopback"`
	IsPrivate          bool     `json:"is_private"`
	IsMulticast        bool     `json:"is_multicast"`
	IsLinkLocalUnicast bool     `json:"is_link_local_unicast"`
	IsGlobalUnicast    bool     `json:"is_global_unicast"`
	ReverseDNSNames    []string `json:"reverse_dns_names,omitempty"`
	Error              string   `json:"error,omitempty"`
}
