package recon

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/vit0-9/recon_api/pkg/utils"
	wdomain "github.com/vit0-9/recon_api/pkg/utils/domain"
)

// Report is the full outcome of investigating one target. Every lookup
// stage records its result here; console rendering is a separate concern.
type Report struct {
	Target      string                        `json:"target"`
	Resolution  utils.Resolution              `json:"resolution"`
	Domain      string                        `json:"domain,omitempty"`
	Aborted     bool                          `json:"aborted,omitempty"` // no domain could be extracted
	DNS         map[string]utils.RecordResult `json:"dns,omitempty"`
	ReverseDNS  map[string][]string           `json:"reverse_dns,omitempty"`
	TLS         *TLSSummary                   `json:"tls,omitempty"`
	TLSError    string                        `json:"tls_error,omitempty"`
	Whois       *wdomain.WhoisInfo            `json:"whois,omitempty"`
	WhoisError  string                        `json:"whois_error,omitempty"`
	StartedAt   time.Time                     `json:"started_at"`
	CompletedAt time.Time                     `json:"completed_at"`
}

// TLSSummary is the certificate digest carried in a report for targets
// that landed on an https URL. The full chain stays behind the API's
// ssl-check endpoint.
type TLSSummary struct {
	Issuer          string    `json:"issuer"`
	Subject         string    `json:"subject"`
	NotAfter        time.Time `json:"not_after"`
	DaysUntilExpiry int       `json:"days_until_expiry"`
	IsValid         bool      `json:"is_valid"`
	IsSelfSigned    bool      `json:"is_self_signed"`
	TLSVersion      string    `json:"tls_version"`
}

type redirectResolver interface {
	Resolve(ctx context.Context, rawURL string) utils.Resolution
}

type dnsLookup interface {
	LookupDomain(domain string) map[string]utils.RecordResult
}

// Investigator runs the four-stage pipeline for one target at a time:
// redirect resolution, domain extraction, DNS aggregation, WHOIS lookup.
// Each call builds fresh local state; nothing is shared across targets.
type Investigator struct {
	resolver redirectResolver
	dns      dnsLookup
	whois    func(domain string) (*wdomain.WhoisInfo, error)
	reverse  func(ip string) []string
	ssl      func(ctx context.Context, host string, port int) (*wdomain.SSLInfo, error)
}

// NewInvestigator wires the pipeline from cfg. Resolving the DNS server
// address is the one hard startup dependency: an error here means no
// lookup stage can work and the caller should treat it as fatal.
func NewInvestigator(cfg Config) (*Investigator, error) {
	server := cfg.DNSServer
	if server == "" {
		resolved, err := utils.SystemResolverAddress()
		if err != nil {
			return nil, err
		}
		server = resolved
	}
	return &Investigator{
		resolver: utils.NewRedirectResolver(cfg.HTTPTimeout, cfg.UserAgent),
		dns:      utils.NewDNSLookup(server, cfg.DNSTimeout),
		whois:    wdomain.GetWhoisInfo,
		reverse:  utils.ReverseDNSNames,
		ssl:      wdomain.GetSSLInfo,
	}, nil
}

// Investigate processes a single target to completion. No lookup failure
// propagates out; every stage degrades into report fields and diagnostics.
func (inv *Investigator) Investigate(ctx context.Context, target string) Report {
	report := Report{Target: target, StartedAt: time.Now()}

	report.Resolution = inv.resolver.Resolve(ctx, target)

	report.Domain = utils.ExtractDomain(report.Resolution.FinalURL)
	if report.Domain == "" {
		log.Printf("No domain could be extracted from %q; skipping DNS and WHOIS lookups", report.Resolution.FinalURL)
		report.Aborted = true
		report.CompletedAt = time.Now()
		return report
	}

	report.DNS = inv.dns.LookupDomain(report.Domain)
	report.ReverseDNS = inv.reverseAddresses(report.DNS)

	if host, port, ok := httpsEndpoint(report.Resolution.FinalURL); ok {
		info, err := inv.ssl(ctx, host, port)
		if err != nil {
			log.Printf("TLS inspection of %s failed: %v", host, err)
			report.TLSError = err.Error()
		} else {
			report.TLS = summarizeTLS(info)
		}
	}

	queryDomain := report.Domain
	if registrable, err := utils.RegistrableDomain(report.Domain); err == nil {
		queryDomain = registrable
	}

	info, err := inv.whois(queryDomain)
	if err != nil {
		if wdomain.IsNotFound(err) {
			log.Printf("WHOIS: no registration found for %s", queryDomain)
		} else {
			log.Printf("WHOIS lookup for %s failed: %v", queryDomain, err)
		}
		report.WhoisError = err.Error()
	} else {
		report.Whois = info
	}

	report.CompletedAt = time.Now()
	return report
}

// httpsEndpoint reports the host and explicit port of an https URL.
// Non-https landings get no TLS stage.
func httpsEndpoint(finalURL string) (string, int, bool) {
	parsed, err := url.Parse(finalURL)
	if err != nil || parsed.Scheme != "https" || parsed.Hostname() == "" {
		return "", 0, false
	}
	port := 0
	if p := parsed.Port(); p != "" {
		port, _ = strconv.Atoi(p)
	}
	return parsed.Hostname(), port, true
}

func summarizeTLS(info *wdomain.SSLInfo) *TLSSummary {
	return &TLSSummary{
		Issuer:          info.Issuer,
		Subject:         info.Subject,
		NotAfter:        info.NotAfter,
		DaysUntilExpiry: info.DaysUntilExpiry,
		IsValid:         info.IsValid,
		IsSelfSigned:    info.IsSelfSigned,
		TLSVersion:      info.TLSVersion,
	}
}

// reverseAddresses resolves PTR names for every address the A and AAAA
// stages returned.
func (inv *Investigator) reverseAddresses(results map[string]utils.RecordResult) map[string][]string {
	reverse := make(map[string][]string)
	for _, recordType := range []string{"A", "AAAA"} {
		result, ok := results[recordType]
		if !ok || result.Outcome != utils.OutcomeRecords {
			continue
		}
		for _, address := range result.Values {
			if names := inv.reverse(address); len(names) > 0 {
				reverse[address] = names
			}
		}
	}
	if len(reverse) == 0 {
		return nil
	}
	return reverse
}
