package domain

import (
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// SSLInfo describes the certificate presented by a host.
type SSLInfo struct {
	Host               string            `json:"host"`
	IsValid            bool              `json:"is_valid"`
	Issuer             string            `json:"issuer"`
	Subject            string            `json:"subject"`
	SerialNumber       string            `json:"serial_number"`
	NotBefore          time.Time         `json:"not_before"`
	NotAfter           time.Time         `json:"not_after"`
	DaysUntilExpiry    int               `json:"days_until_expiry"`
	SubjectAltNames    []string          `json:"subject_alt_names"`
	SignatureAlgorithm string            `json:"signature_algorithm"`
	PublicKeyAlgorithm string            `json:"public_key_algorithm"`
	KeySize            int               `json:"key_size"`
	IsSelfSigned       bool              `json:"is_self_signed"`
	IsWildcard         bool              `json:"is_wildcard"`
	CertificateChain   []CertificateInfo `json:"certificate_chain"`
	TLSVersion         string            `json:"tls_version"`
	CipherSuite        string            `json:"cipher_suite"`
	ValidationErrors   []string          `json:"validation_errors,omitempty"`
	QueryTime          time.Time         `json:"query_time"`
}

// CertificateInfo summarizes one certificate in the presented chain.
type CertificateInfo struct {
	Subject   string    `json:"subject"`
	Issuer    string    `json:"issuer"`
	NotBefore time.Time `json:"not_before"`
	NotAfter  time.Time `json:"not_after"`
	IsCA      bool      `json:"is_ca"`
	KeyUsage  []string  `json:"key_usage"`
}

// GetSSLInfo connects to host:port and inspects the presented certificate
// chain. Verification is disabled on the handshake so invalid certificates
// can still be analyzed; problems are reported in ValidationErrors instead.
// Port 0 means 443.
func GetSSLInfo(ctx context.Context, host string, port int) (*SSLInfo, error) {
	host = strings.ToLower(strings.TrimSpace(host))
	if host == "" {
		return nil, fmt.Errorf("host cannot be empty")
	}
	if port == 0 {
		port = 443
	}
	address := net.JoinHostPort(host, strconv.Itoa(port))

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: 10 * time.Second},
		Config: &tls.Config{
			ServerName:         host,
			InsecureSkipVerify: true,
		},
	}
	rawConn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("TLS connection to %s failed: %w", address, err)
	}
	conn := rawConn.(*tls.Conn)
	defer conn.Close()

	state := conn.ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, fmt.Errorf("no certificates presented by %s", address)
	}
	leaf := state.PeerCertificates[0]

	info := &SSLInfo{
		Host:               host,
		Issuer:             leaf.Issuer.String(),
		Subject:            leaf.Subject.String(),
		SerialNumber:       leaf.SerialNumber.String(),
		NotBefore:          leaf.NotBefore,
		NotAfter:           leaf.NotAfter,
		SubjectAltNames:    leaf.DNSNames,
		SignatureAlgorithm: leaf.SignatureAlgorithm.String(),
		PublicKeyAlgorithm: leaf.PublicKeyAlgorithm.String(),
		KeySize:            keySize(leaf),
		IsSelfSigned:       leaf.Issuer.String() == leaf.Subject.String(),
		TLSVersion:         tls.VersionName(state.Version),
		CipherSuite:        tls.CipherSuiteName(state.CipherSuite),
		QueryTime:          time.Now(),
	}

	info.DaysUntilExpiry = int(time.Until(leaf.NotAfter).Hours() / 24)
	info.IsValid = info.DaysUntilExpiry > 0 && time.Now().After(leaf.NotBefore)

	for _, name := range leaf.DNSNames {
		if strings.HasPrefix(name, "*.") {
			info.IsWildcard = true
			break
		}
	}

	info.ValidationErrors = validateCertificate(leaf, host)

	for _, cert := range state.PeerCertificates {
		info.CertificateChain = append(info.CertificateChain, CertificateInfo{
			Subject:   cert.Subject.String(),
			Issuer:    cert.Issuer.String(),
			NotBefore: cert.NotBefore,
			NotAfter:  cert.NotAfter,
			IsCA:      cert.IsCA,
			KeyUsage:  keyUsage(cert),
		})
	}

	return info, nil
}

func validateCertificate(cert *x509.Certificate, host string) []string {
	var problems []string
	now := time.Now()

	if now.After(cert.NotAfter) {
		problems = append(problems, "certificate has expired")
	}
	if now.Before(cert.NotBefore) {
		problems = append(problems, "certificate is not yet valid")
	}
	if err := cert.VerifyHostname(host); err != nil {
		problems = append(problems, "certificate does not match host")
	}
	if len(cert.CRLDistributionPoints) == 0 && len(cert.OCSPServer) == 0 {
		problems = append(problems, "no revocation checking mechanism available")
	}
	return problems
}

func keySize(cert *x509.Certificate) int {
	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return pub.N.BitLen()
	case *ecdsa.PublicKey:
		return pub.Curve.Params().BitSize
	case ed25519.PublicKey:
		return 256
	default:
		return 0
	}
}

var keyUsageNames = []struct {
	bit  x509.KeyUsage
	name string
}{
	{x509.KeyUsageDigitalSignature, "Digital Signature"},
	{x509.KeyUsageContentCommitment, "Content Commitment"},
	{x509.KeyUsageKeyEncipherment, "Key Encipherment"},
	{x509.KeyUsageDataEncipherment, "Data Encipherment"},
	{x509.KeyUsageKeyAgreement, "Key Agreement"},
	{x509.KeyUsageCertSign, "Certificate Signing"},
	{x509.KeyUsageCRLSign, "CRL Signing"},
}

func keyUsage(cert *x509.Certificate) []string {
	var usage []string
	for _, ku := range keyUsageNames {
		if cert.KeyUsage&ku.bit != 0 {
			usage = append(usage, ku.name)
		}
	}
	return usage
}
