package domain

import (
	"fmt"
	"testing"

	whoisparser "github.com/likexian/whois-parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromParsedMapsFields(t *testing.T) {
	parsed := whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{
			Domain:         "example.com",
			WhoisServer:    "whois.verisign-grs.com",
			Status:         []string{"clientTransferProhibited"},
			NameServers:    []string{"a.iana-servers.net", "b.iana-servers.net"},
			CreatedDate:    "1995-08-14T04:00:00Z",
			UpdatedDate:    "2023-08-14T07:01:31Z",
			ExpirationDate: "2024-08-13T04:00:00Z",
		},
		Registrar: &whoisparser.Contact{
			Name: "RESERVED-Internet Assigned Numbers Authority",
		},
		Registrant: &whoisparser.Contact{
			Name:         "Domain Administrator",
			Organization: "Internet Assigned Numbers Authority",
		},
	}

	info := FromParsed("example.com", parsed)

	assert.Equal(t, "example.com", info.Domain)
	assert.Equal(t, "RESERVED-Internet Assigned Numbers Authority", info.Registrar)
	assert.Equal(t, "1995-08-14T04:00:00Z", info.CreationDate)
	assert.Equal(t, "2024-08-13T04:00:00Z", info.ExpirationDate)
	assert.Equal(t, "2023-08-14T07:01:31Z", info.UpdatedDate)
	assert.Equal(t, []string{"a.iana-servers.net", "b.iana-servers.net"}, info.NameServers)
	assert.Equal(t, []string{"clientTransferProhibited"}, info.Status)
	assert.Equal(t, "Internet Assigned Numbers Authority", info.RegistrantOrg)
	assert.Equal(t, "Domain Administrator", info.RegistrantName)
	assert.Equal(t, "whois.verisign-grs.com", info.WhoisServer)
	assert.False(t, info.RedemptionPeriod)
}

func TestFromParsedRedemptionFlag(t *testing.T) {
	tests := []struct {
		name     string
		statuses []string
		expected bool
	}{
		{"redemptionPeriod status", []string{"redemptionPeriod"}, true},
		{"case and casing variants", []string{"clientHold", "REDEMPTIONPERIOD"}, true},
		{"redemption substring in EPP URL form", []string{"redemptionperiod https://icann.org/epp#redemptionPeriod"}, true},
		{"ordinary statuses", []string{"ok", "clientTransferProhibited"}, false},
		{"no statuses", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := whoisparser.WhoisInfo{
				Domain: &whoisparser.Domain{Domain: "example.org", Status: tt.statuses},
			}
			info := FromParsed("example.org", parsed)
			assert.Equal(t, tt.expected, info.RedemptionPeriod)
			assert.Equal(t, tt.statuses, info.Status, "statuses must be carried unchanged")
		})
	}
}

func TestFromParsedHandlesMissingSections(t *testing.T) {
	info := FromParsed("example.net", whoisparser.WhoisInfo{})

	assert.Equal(t, "example.net", info.Domain, "queried domain is kept when the parser has none")
	assert.Empty(t, info.Registrar)
	assert.Empty(t, info.RegistrantOrg)
	assert.Empty(t, info.NameServers)
	assert.False(t, info.RedemptionPeriod)
}

func TestFromParsedPrefersParsedDomainName(t *testing.T) {
	parsed := whoisparser.WhoisInfo{
		Domain: &whoisparser.Domain{Domain: "example.com"},
	}
	info := FromParsed("www.example.com", parsed)
	assert.Equal(t, "example.com", info.Domain)
}

func TestGetWhoisInfoRejectsEmptyDomain(t *testing.T) {
	_, err := GetWhoisInfo("   ")
	require.Error(t, err)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(whoisparser.ErrNotFoundDomain))
	assert.True(t, IsNotFound(fmt.Errorf("whois response for example.com: %w", whoisparser.ErrNotFoundDomain)))
	assert.False(t, IsNotFound(fmt.Errorf("connection refused")))
	assert.False(t, IsNotFound(nil))
}
