package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/recon_api/models"
	"github.com/vit0-9/recon_api/pkg/utils"
	"github.com/vit0-9/recon_api/pkg/utils/domain"
)

// NetworkIntelligenceHandlers groups network and domain related utilities.
type NetworkIntelligenceHandlers struct {
	dns   *utils.DNSLookup
	whois func(name string) (*domain.WhoisInfo, error)
}

func NewNetworkIntelligenceHandlers(dns *utils.DNSLookup) *NetworkIntelligenceHandlers {
	return &NetworkIntelligenceHandlers{dns: dns, whois: domain.GetWhoisInfo}
}

// DNSLookupHandler godoc
// @Summary      Perform DNS lookups for a domain
// @Description  Queries the fixed record-type set (A, AAAA, MX, TXT, NS, CNAME, SOA) unless 'record_types' narrows it. NXDOMAIN on any type short-circuits the remaining types.
// @Tags         Network & Domain Intelligence
// @Produce      json
// @Param        domain query string true "Domain to lookup"
// @Param        record_types query []string false "DNS record types to query (e.g., A, MX, TXT)" collectionFormat(csv)
// @Success      200 {object} models.DNSLookupResponse "Per-type outcomes for the queried domain"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing domain)"
// @Router       /net/dns-lookup [get]
func (h *NetworkIntelligenceHandlers) DNSLookupHandler(c *gin.Context) {
	domainQuery := c.Query("domain")
	if domainQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain query parameter is required"})
		return
	}

	recordTypes := c.QueryArray("record_types")
	var records map[string]utils.RecordResult
	if len(recordTypes) == 0 {
		records = h.dns.LookupDomain(domainQuery)
	} else {
		records = h.dns.LookupTypes(domainQuery, recordTypes)
	}

	c.JSON(http.StatusOK, models.DNSLookupResponse{
		Domain:  domainQuery,
		Records: records,
	})
}

// WhoisLookupHandler godoc
// @Summary      Perform WHOIS lookup for a domain
// @Description  Retrieves registration metadata for a given domain. Missing registrant fields mean the registry withheld them.
// @Tags         Network & Domain Intelligence
// @Produce      json
// @Param        domain query string true "Domain for WHOIS lookup"
// @Success      200 {object} models.WhoisLookupResponse "WHOIS information or error during lookup"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing domain)"
// @Router       /net/whois-lookup [get]
func (h *NetworkIntelligenceHandlers) WhoisLookupHandler(c *gin.Context) {
	domainQuery := c.Query("domain")
	if domainQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain query parameter is required"})
		return
	}

	info, err := h.whois(domainQuery)
	if err != nil {
		// 200 with the error in the body, as for the other lookup endpoints
		c.JSON(http.StatusOK, models.WhoisLookupResponse{
			Domain:    domainQuery,
			QueryTime: time.Now(),
			Error:     err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.WhoisLookupResponse{
		Domain:           info.Domain,
		Registrar:        info.Registrar,
		CreationDate:     info.CreationDate,
		ExpirationDate:   info.ExpirationDate,
		UpdatedDate:      info.UpdatedDate,
		NameServers:      info.NameServers,
		Status:           info.Status,
		RegistrantOrg:    info.RegistrantOrg,
		RegistrantName:   info.RegistrantName,
		RedemptionPeriod: info.RedemptionPeriod,
		WhoisServer:      info.WhoisServer,
		QueryTime:        info.QueryTime,
	})
}

// IPInfoHandler godoc
// @Summary      Get information about an IP address
// @Description  Provides validation, type classification and reverse DNS for an IP.
// @Tags         Network & Domain Intelligence
// @Produce      json
// @Param        ip query string true "IP Address to get info for"
// @Success      200 {object} models.IPInfoResponse "IP information"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing IP address)"
// @Router       /net/ip-info [get]
func (h *NetworkIntelligenceHandlers) IPInfoHandler(c *gin.Context) {
	ipAddress := c.Query("ip")
	if ipAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ip query parameter is required"})
		return
	}

	data := utils.GetBasicIPInfo(ipAddress)

	c.JSON(http.StatusOK, models.IPInfoResponse{
		IPAddress:          data.IPAddress,
		IsValid:            data.IsValid,
		Version:            data.Version,
		IsLoopback:         data.IsLoopback,
		IsPrivate:          data.IsPrivate,
		IsMulticast:        data.IsMulticast,
		IsLinkLocalUnicast: data.IsLinkLocalUnicast,
		IsGlobalUnicast:    data.IsGlobalUnicast,
		ReverseDNSNames:    data.ReverseDNSNames,
		Error:              data.Error,
	})
}

// SSLCheckHandler godoc
// @Summary      Check SSL certificate information for a host
// @Description  Retrieves SSL certificate details for a given host and optional port (defaults to 443).
// @Tags         Network & Domain Intelligence
// @Produce      json
// @Param        host query string true "Host (domain or IP) for SSL check"
// @Param        port query int false "Port for SSL check (defaults to 443)"
// @Success      200 {object} models.SSLCheckResponse "SSL certificate information or error during check"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing host)"
// @Router       /net/ssl-check [get]
func (h *NetworkIntelligenceHandlers) SSLCheckHandler(c *gin.Context) {
	hostQuery := c.Query("host")
	if hostQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "host query parameter is required"})
		return
	}

	port := 0
	if portQuery := c.Query("port"); portQuery != "" {
		parsed, err := strconv.Atoi(portQuery)
		if err != nil || parsed <= 0 || parsed > 65535 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid port number"})
			return
		}
		port = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 20*time.Second)
	defer cancel()

	sslInfo, err := domain.GetSSLInfo(ctx, hostQuery, port)
	if err != nil {
		c.JSON(http.StatusOK, models.SSLCheckResponse{
			Host:      hostQuery,
			QueryTime: time.Now(),
			Error:     err.Error(),
		})
		return
	}

	chain := make([]models.CertificateInfo, len(sslInfo.CertificateChain))
	for i, cert := range sslInfo.CertificateChain {
		chain[i] = models.CertificateInfo{
			Subject:   cert.Subject,
			Issuer:    cert.Issuer,
			NotBefore: cert.NotBefore,
			NotAfter:  cert.NotAfter,
			IsCA:      cert.IsCA,
			KeyUsage:  cert.KeyUsage,
		}
	}

	c.JSON(http.StatusOK, models.SSLCheckResponse{
		Host:               sslInfo.Host,
		IsValid:            sslInfo.IsValid,
		Issuer:             sslInfo.Issuer,
		Subject:            sslInfo.Subject,
		SerialNumber:       sslInfo.SerialNumber,
		NotBefore:          sslInfo.NotBefore,
		NotAfter:           sslInfo.NotAfter,
		DaysUntilExpiry:    sslInfo.DaysUntilExpiry,
		SubjectAltNames:    sslInfo.SubjectAltNames,
		SignatureAlgorithm: sslInfo.SignatureAlgorithm,
		PublicKeyAlgorithm: sslInfo.PublicKeyAlgorithm,
		KeySize:            sslInfo.KeySize,
		IsSelfSigned:       sslInfo.IsSelfSigned,
		IsWildcard:         sslInfo.IsWildcard,
		CertificateChain:   chain,
		TLSVersion:         sslInfo.TLSVersion,
		CipherSuite:        sslInfo.CipherSuite,
		ValidationErrors:   sslInfo.ValidationErrors,
		QueryTime:          sslInfo.QueryTime,
	})
}
