package utils

import (
	"net"
	"strings"
)

// IPInfoData describes a single address: validity, classification and
// reverse DNS names.
type IPInfoData struct {
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

// GetBasicIPInfo classifies an address and resolves its PTR names.
func GetBasicIPInfo(ipStr string) IPInfoData {
	data := IPInfoData{IPAddress: ipStr}

	parsedIP := net.ParseIP(ipStr)
	if parsedIP == nil {
		data.Error = "Invalid IP address format"
		return data
	}

	data.IsValid = true
	if parsedIP.To4() != nil {
		data.Version = "IPv4"
	} else {
		data.Version = "IPv6"
	}

	data.IsLoopback = parsedIP.IsLoopback()
	data.IsPrivate = parsedIP.IsPrivate()
	data.IsMulticast = parsedIP.IsMulticast()
	data.IsLinkLocalUnicast = parsedIP.IsLinkLocalUnicast()
	data.IsGlobalUnicast = parsedIP.IsGlobalUnicast()
	data.ReverseDNSNames = ReverseDNSNames(ipStr)

	return data
}

// ReverseDNSNames returns the PTR names for an address with trailing dots
// trimmed, or nil when none resolve.
func ReverseDNSNames(ip string) []string {
	names, err := net.LookupAddr(ip)
	if err != nil || len(names) == 0 {
		return nil
	}
	cleaned := make([]string, len(names))
	for i, name := range names {
		cleaned[i] = strings.TrimSuffix(name, ".")
	}
	return cleaned
}
