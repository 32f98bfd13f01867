package models

import "time"

// WhoisLookupResponse represents the response from a WHOIS lookup.
// Registrant fields are omitted when the registry withholds them.
type WhoisLookupResponse struct {
	Domain           string    `json:"domain"`
	Registrar        string    `json:"registrar,omitempty"`
	CreationDate     string    `json:"creation_date,omitempty"`
	ExpirationDate   string    `json:"expiration_date,omitempty"`
	UpdatedDate      string    `json:"updated_date,omitempty"`
	NameServers      []string  `json:"name_servers,omitempty"`
	Status           []string  `json:"status,omitempty"`
	RegistrantOrg    string    `json:"registrant_org,omitempty"`
	RegistrantName   string    `json:"registrant_name,omitempty"`
	RedemptionPeriod bool      `json:"redemption_period,omitempty"`
	WhoisServer      string    `json:"whois_server,omitempty"`
	QueryTime        time.Time `json:"query_time"`
	Error            string    `json:"error,omitempty"`
}
