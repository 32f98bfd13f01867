package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/likexian/whois"
	whoisparser "github.com/likexian/whois-parser"
)

// WhoisInfo is the structured subset of a registry response the
// investigation carries. Optional fields stay empty when the registry
// withholds them; that is expected, not an error.
type WhoisInfo struct {
	Domain           string    `json:"domain"`
	Registrar        string    `json:"registrar"`
	CreationDate     string    `json:"creation_date"`
	ExpirationDate   string    `json:"expiration_date"`
	UpdatedDate      string    `json:"updated_date"`
	NameServers      []string  `json:"name_servers"`
	Status           []string  `json:"status"`
	RegistrantOrg    string    `json:"registrant_org,omitempty"`
	RegistrantName   string    `json:"registrant_name,omitempty"`
	RedemptionPeriod bool      `json:"redemption_period"`
	WhoisServer      string    `json:"whois_server,omitempty"`
	QueryTime        time.Time `json:"query_time"`
	RawData          string    `json:"raw_data,omitempty"`
}

// GetWhoisInfo performs a single WHOIS query for domain and parses the
// response. The whois client picks the registry server and applies its own
// default timeouts. Lookup and parse failures surface as errors; callers
// decide how to degrade.
func GetWhoisInfo(domain string) (*WhoisInfo, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, fmt.Errorf("domain cannot be empty")
	}

	raw, err := whois.Whois(domain)
	if err != nil {
		return nil, fmt.Errorf("whois query for %s failed: %w", domain, err)
	}

	parsed, err := whoisparser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("whois response for %s: %w", domain, err)
	}

	info := FromParsed(domain, parsed)
	info.RawData = raw
	info.QueryTime = time.Now()
	return info, nil
}

// FromParsed maps parser output onto the report shape and flags a
// redemption-period status. The flag is advisory only; parsed data is
// carried unchanged.
func FromParsed(domain string, parsed whoisparser.WhoisInfo) *WhoisInfo {
	info := &WhoisInfo{Domain: domain}

	if parsed.Domain != nil {
		if parsed.Domain.Domain != "" {
			info.Domain = parsed.Domain.Domain
		}
		info.CreationDate = parsed.Domain.CreatedDate
		info.ExpirationDate = parsed.Domain.ExpirationDate
		info.UpdatedDate = parsed.Domain.UpdatedDate
		info.NameServers = parsed.Domain.NameServers
		info.Status = parsed.Domain.Status
		info.WhoisServer = parsed.Domain.WhoisServer
		for _, status := range parsed.Domain.Status {
			if strings.Contains(strings.ToLower(status), "redemption") {
				info.RedemptionPeriod = true
				break
			}
		}
	}
	if parsed.Registrar != nil {
		info.Registrar = parsed.Registrar.Name
	}
	if parsed.Registrant != nil {
		info.RegistrantOrg = parsed.Registrant.Organization
		info.RegistrantName = parsed.Registrant.Name
	}
	return info
}

// IsNotFound reports whether err marks a domain absent from the registry
// rather than a transport or parse problem.
func IsNotFound(err error) bool {
	return errors.Is(err, whoisparser.ErrNotFoundDomain)
}
