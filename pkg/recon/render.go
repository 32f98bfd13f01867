package recon

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/vit0-9/recon_api/pkg/utils"
	wdomain "github.com/vit0-9/recon_api/pkg/utils/domain"
)

const divider = "================================================================"

// Render writes the human-readable block for one report. The renderer is
// the only place investigation results turn into console text; the lookup
// stages themselves only log diagnostics.
func Render(w io.Writer, report Report) {
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Target: %s\n", report.Target)
	fmt.Fprintf(w, "Started: %s\n", report.StartedAt.Format(time.RFC3339))

	if report.Resolution.Redirected {
		fmt.Fprintf(w, "Redirected to: %s\n", report.Resolution.FinalURL)
	} else {
		fmt.Fprintf(w, "Final URL: %s\n", report.Resolution.FinalURL)
	}
	if report.Resolution.Error != "" {
		fmt.Fprintf(w, "Resolution warning: %s\n", report.Resolution.Error)
	}

	if report.Aborted {
		fmt.Fprintf(w, "No domain could be extracted from %s; investigation aborted\n", report.Resolution.FinalURL)
		fmt.Fprintf(w, "Completed: %s\n", report.CompletedAt.Format(time.RFC3339))
		return
	}

	fmt.Fprintf(w, "Domain: %s\n", report.Domain)

	fmt.Fprintln(w, "\nDNS records:")
	for _, recordType := range utils.LookupRecordTypes {
		result, queried := report.DNS[recordType]
		if !queried {
			// short-circuited after an NXDOMAIN on an earlier type
			continue
		}
		switch result.Outcome {
		case utils.OutcomeRecords:
			fmt.Fprintf(w, "  %s:\n", recordType)
			for _, value := range result.Values {
				fmt.Fprintf(w, "    %s\n", value)
			}
		case utils.OutcomeEmpty:
			fmt.Fprintf(w, "  %s: No records found\n", recordType)
		case utils.OutcomeNXDomain:
			fmt.Fprintf(w, "  %s: NXDOMAIN\n", recordType)
		case utils.OutcomeTimeout:
			fmt.Fprintf(w, "  %s: Timeout\n", recordType)
		case utils.OutcomeFailure:
			fmt.Fprintf(w, "  %s: Error: %s\n", recordType, result.Detail)
		}
	}

	if len(report.ReverseDNS) > 0 {
		fmt.Fprintln(w, "\nReverse DNS:")
		addresses := make([]string, 0, len(report.ReverseDNS))
		for address := range report.ReverseDNS {
			addresses = append(addresses, address)
		}
		sort.Strings(addresses)
		for _, address := range addresses {
			fmt.Fprintf(w, "  %s:\n", address)
			for _, name := range report.ReverseDNS[address] {
				fmt.Fprintf(w, "    %s\n", name)
			}
		}
	}

	switch {
	case report.TLS != nil:
		fmt.Fprintln(w, "\nTLS:")
		renderTLS(w, report.TLS)
	case report.TLSError != "":
		fmt.Fprintln(w, "\nTLS:")
		fmt.Fprintf(w, "  Inspection failed: %s\n", report.TLSError)
	}

	fmt.Fprintln(w, "\nWHOIS:")
	switch {
	case report.Whois != nil:
		renderWhois(w, report.Whois)
	case report.WhoisError != "":
		fmt.Fprintf(w, "  No WHOIS data for %s: %s\n", report.Domain, report.WhoisError)
	}

	fmt.Fprintf(w, "\nCompleted: %s\n", report.CompletedAt.Format(time.RFC3339))
}

func renderTLS(w io.Writer, summary *TLSSummary) {
	if !summary.IsValid {
		fmt.Fprintln(w, "  WARNING: certificate is outside its validity window")
	}
	if summary.IsSelfSigned {
		fmt.Fprintln(w, "  WARNING: certificate is self-signed")
	}
	fmt.Fprintf(w, "  Issuer: %s\n", summary.Issuer)
	fmt.Fprintf(w, "  Subject: %s\n", summary.Subject)
	fmt.Fprintf(w, "  Expires: %s (%d days)\n", summary.NotAfter.Format(time.RFC3339), summary.DaysUntilExpiry)
	fmt.Fprintf(w, "  Version: %s\n", summary.TLSVersion)
}

func renderWhois(w io.Writer, info *wdomain.WhoisInfo) {
	if info.RedemptionPeriod {
		fmt.Fprintf(w, "  WARNING: %s is in redemption period\n", info.Domain)
	}
	fmt.Fprintf(w, "  Registrar: %s\n", info.Registrar)
	fmt.Fprintf(w, "  Created: %s\n", info.CreationDate)
	fmt.Fprintf(w, "  Expires: %s\n", info.ExpirationDate)
	fmt.Fprintf(w, "  Updated: %s\n", info.UpdatedDate)
	fmt.Fprintln(w, "  Name servers:")
	for _, ns := range info.NameServers {
		fmt.Fprintf(w, "    %s\n", ns)
	}
	// registries frequently withhold these; omit the lines entirely
	if info.RegistrantOrg != "" {
		fmt.Fprintf(w, "  Organization: %s\n", info.RegistrantOrg)
	}
	if info.RegistrantName != "" {
		fmt.Fprintf(w, "  Registrant: %s\n", info.RegistrantName)
	}
}
