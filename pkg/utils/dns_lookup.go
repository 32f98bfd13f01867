package utils

import (
	"errors"
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// LookupRecordTypes is the fixed query order for a full investigation.
var LookupRecordTypes = []string{"A", "AAAA", "MX", "TXT", "NS", "CNAME", "SOA"}

// RecordOutcome tags the result of a single record-type query.
type RecordOutcome string

const (
	OutcomeRecords  RecordOutcome = "records"
	OutcomeEmpty    RecordOutcome = "empty"
	OutcomeNXDomain RecordOutcome = "nxdomain"
	OutcomeTimeout  RecordOutcome = "timeout"
	OutcomeFailure  RecordOutcome = "failure"
)

// RecordResult is the tagged outcome for one record type. Values is only
// populated for OutcomeRecords; Detail only for OutcomeFailure.
type RecordResult struct {
	Outcome RecordOutcome `json:"outcome"`
	Values  []string      `json:"values,omitempty"`
	Detail  string        `json:"detail,omitempty"`
}

// Exchanger is the single round trip the lookup loop needs from a DNS
// client. *dns.Client satisfies it; tests substitute a fake.
type Exchanger interface {
	Exchange(msg *dns.Msg, address string) (*dns.Msg, time.Duration, error)
}

// DNSLookup queries record sets for a domain against a fixed resolver.
type DNSLookup struct {
	exchanger Exchanger
	server    string
}

func NewDNSLookup(server string, timeout time.Duration) *DNSLookup {
	return &DNSLookup{
		exchanger: &dns.Client{Timeout: timeout},
		server:    server,
	}
}

// NewDNSLookupWithExchanger wires a custom exchanger. Used by tests.
func NewDNSLookupWithExchanger(exchanger Exchanger, server string) *DNSLookup {
	return &DNSLookup{exchanger: exchanger, server: server}
}

// LookupDomain runs the fixed record-type order against domain. NXDOMAIN on
// any type finalizes the set immediately: the outcome is stored under that
// type and no further types are queried. Empty answers, timeouts and other
// failures are recorded per type and the loop continues.
func (d *DNSLookup) LookupDomain(domain string) map[string]RecordResult {
	return d.LookupTypes(domain, LookupRecordTypes)
}

// LookupTypes is LookupDomain over a caller-chosen type list, preserving
// the same short-circuit rule.
func (d *DNSLookup) LookupTypes(domain string, recordTypes []string) map[string]RecordResult {
	results := make(map[string]RecordResult, len(recordTypes))
	for _, recordType := range recordTypes {
		recordType = strings.ToUpper(strings.TrimSpace(recordType))
		qtype, ok := dns.StringToType[recordType]
		if !ok {
			results[recordType] = RecordResult{
				Outcome: OutcomeFailure,
				Detail:  fmt.Sprintf("unsupported record type %q", recordType),
			}
			continue
		}

		result := d.query(domain, qtype)
		results[recordType] = result
		if result.Outcome == OutcomeNXDomain {
			log.Printf("%s does not exist (NXDOMAIN on %s query); skipping remaining record types", domain, recordType)
			break
		}
	}
	return results
}

func (d *DNSLookup) query(domain string, qtype uint16) RecordResult {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), qtype)
	msg.RecursionDesired = true

	resp, _, err := d.exchanger.Exchange(msg, d.server)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return RecordResult{Outcome: OutcomeTimeout}
		}
		return RecordResult{Outcome: OutcomeFailure, Detail: err.Error()}
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return RecordResult{Outcome: OutcomeNXDomain}
	default:
		return RecordResult{
			Outcome: OutcomeFailure,
			Detail:  fmt.Sprintf("server returned %s", dns.RcodeToString[resp.Rcode]),
		}
	}

	values := answerValues(resp.Answer, qtype)
	if len(values) == 0 {
		return RecordResult{Outcome: OutcomeEmpty}
	}
	return RecordResult{Outcome: OutcomeRecords, Values: values}
}

// answerValues stringifies the answers matching the queried type. A CNAME
// chain in an A response contributes only the addresses, not the aliases.
func answerValues(answers []dns.RR, qtype uint16) []string {
	var values []string
	for _, answer := range answers {
		if answer.Header().Rrtype != qtype {
			continue
		}
		switch record := answer.(type) {
		case *dns.A:
			values = append(values, record.A.String())
		case *dns.AAAA:
			values = append(values, record.AAAA.String())
		case *dns.MX:
			values = append(values, fmt.Sprintf("%d %s", record.Preference, record.Mx))
		case *dns.TXT:
			values = append(values, strings.Join(record.Txt, ""))
		case *dns.NS:
			values = append(values, record.Ns)
		case *dns.CNAME:
			values = append(values, record.Target)
		case *dns.SOA:
			values = append(values, fmt.Sprintf("%s %s %d %d %d %d %d",
				record.Ns, record.Mbox, record.Serial, record.Refresh, record.Retry, record.Expire, record.Minttl))
		default:
			values = append(values, answer.String())
		}
	}
	return values
}

// SystemResolverAddress reads the host resolver configuration and returns
// the first configured server as host:port. The entry points treat failure
// here as fatal: nothing downstream works without a resolver.
func SystemResolverAddress() (string, error) {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return "", fmt.Errorf("cannot load resolver configuration: %w", err)
	}
	if len(conf.Servers) == 0 {
		return "", fmt.Errorf("resolver configuration lists no servers")
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}
