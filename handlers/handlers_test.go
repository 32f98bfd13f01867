package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vit0-9/recon_api/models"
	"github.com/vit0-9/recon_api/pkg/utils"
	"github.com/vit0-9/recon_api/pkg/utils/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// cannedExchanger answers every query from a fixed zone so handler tests
// never touch a real resolver.
type cannedExchanger struct {
	answers map[uint16][]string
	rcode   int
}

func (f *cannedExchanger) Exchange(msg *dns.Msg, address string) (*dns.Msg, time.Duration, error) {
	resp := new(dns.Msg)
	resp.SetReply(msg)
	resp.Rcode = f.rcode
	for _, zone := range f.answers[msg.Question[0].Qtype] {
		rr, err := dns.NewRR(zone)
		if err != nil {
			panic(err)
		}
		resp.Answer = append(resp.Answer, rr)
	}
	return resp, 0, nil
}

func performRequest(router *gin.Engine, method, path string, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestHealthCheckHandler(t *testing.T) {
	router := gin.New()
	router.GET("/health", NewHealthHandler().HealthCheckHandler)

	rec := performRequest(router, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "UP", body["status"])
}

func TestDNSLookupHandlerRequiresDomain(t *testing.T) {
	handlers := NewNetworkIntelligenceHandlers(utils.NewDNSLookupWithExchanger(&cannedExchanger{}, "127.0.0.1:53"))
	router := gin.New()
	router.GET("/dns-lookup", handlers.DNSLookupHandler)

	rec := performRequest(router, http.MethodGet, "/dns-lookup", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDNSLookupHandlerReturnsRecords(t *testing.T) {
	exchanger := &cannedExchanger{answers: map[uint16][]string{
		dns.TypeA: {"example.com. 300 IN A 93.184.216.34"},
	}}
	handlers := NewNetworkIntelligenceHandlers(utils.NewDNSLookupWithExchanger(exchanger, "127.0.0.1:53"))
	router := gin.New()
	router.GET("/dns-lookup", handlers.DNSLookupHandler)

	rec := performRequest(router, http.MethodGet, "/dns-lookup?domain=example.com&record_types=A&record_types=MX", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.DNSLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "example.com", body.Domain)
	require.Contains(t, body.Records, "A")
	assert.Equal(t, utils.OutcomeRecords, body.Records["A"].Outcome)
	assert.Equal(t, []string{"93.184.216.34"}, body.Records["A"].Values)
	assert.Equal(t, utils.OutcomeEmpty, body.Records["MX"].Outcome)
}

func TestDNSLookupHandlerNXDomain(t *testing.T) {
	handlers := NewNetworkIntelligenceHandlers(
		utils.NewDNSLookupWithExchanger(&cannedExchanger{rcode: dns.RcodeNameError}, "127.0.0.1:53"))
	router := gin.New()
	router.GET("/dns-lookup", handlers.DNSLookupHandler)

	rec := performRequest(router, http.MethodGet, "/dns-lookup?domain=nonexistentdomain123xyz.org", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.DNSLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Records, 1, "NXDOMAIN must short-circuit the remaining types")
	assert.Equal(t, utils.OutcomeNXDomain, body.Records["A"].Outcome)
}

func TestWhoisLookupHandlerRequiresDomain(t *testing.T) {
	handlers := NewNetworkIntelligenceHandlers(utils.NewDNSLookupWithExchanger(&cannedExchanger{}, "127.0.0.1:53"))
	router := gin.New()
	router.GET("/whois-lookup", handlers.WhoisLookupHandler)

	rec := performRequest(router, http.MethodGet, "/whois-lookup", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWhoisLookupHandlerReturnsInfo(t *testing.T) {
	handlers := NewNetworkIntelligenceHandlers(utils.NewDNSLookupWithExchanger(&cannedExchanger{}, "127.0.0.1:53"))
	handlers.whois = func(name string) (*domain.WhoisInfo, error) {
		return &domain.WhoisInfo{
			Domain:           name,
			Registrar:        "Example Registrar",
			CreationDate:     "1995-08-14T04:00:00Z",
			NameServers:      []string{"a.iana-servers.net"},
			Status:           []string{"redemptionPeriod"},
			RedemptionPeriod: true,
		}, nil
	}
	router := gin.New()
	router.GET("/whois-lookup", handlers.WhoisLookupHandler)

	rec := performRequest(router, http.MethodGet, "/whois-lookup?domain=example.com", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.WhoisLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "example.com", body.Domain)
	assert.Equal(t, "Example Registrar", body.Registrar)
	assert.Equal(t, []string{"a.iana-servers.net"}, body.NameServers)
	assert.True(t, body.RedemptionPeriod)
	assert.Empty(t, body.Error)
}

func TestWhoisLookupHandlerReportsErrorInBody(t *testing.T) {
	handlers := NewNetworkIntelligenceHandlers(utils.NewDNSLookupWithExchanger(&cannedExchanger{}, "127.0.0.1:53"))
	handlers.whois = func(name string) (*domain.WhoisInfo, error) {
		return nil, fmt.Errorf("whois query for %s failed: connection refused", name)
	}
	router := gin.New()
	router.GET("/whois-lookup", handlers.WhoisLookupHandler)

	rec := performRequest(router, http.MethodGet, "/whois-lookup?domain=example.com", "")

	require.Equal(t, http.StatusOK, rec.Code, "lookup failures are reported in the body, not as HTTP errors")
	var body models.WhoisLookupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "example.com", body.Domain)
	assert.Contains(t, body.Error, "connection refused")
}

func TestExtractDomainHandler(t *testing.T) {
	handlers := NewURLUtilitiesHandlers(utils.NewRedirectResolver(time.Second, "recon-test/1.0"))
	router := gin.New()
	router.GET("/extract-domain", handlers.ExtractDomainHandler)

	rec := performRequest(router, http.MethodGet, "/extract-domain?url=https%3A%2F%2Fwww.blog.example.co.uk%2Fpost", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ExtractDomainResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "blog.example.co.uk", body.Domain)
	assert.Equal(t, "example.co.uk", body.RegistrableDomain)
	assert.Empty(t, body.Error)
}

func TestExtractDomainHandlerRequiresURL(t *testing.T) {
	handlers := NewURLUtilitiesHandlers(utils.NewRedirectResolver(time.Second, "recon-test/1.0"))
	router := gin.New()
	router.GET("/extract-domain", handlers.ExtractDomainHandler)

	rec := performRequest(router, http.MethodGet, "/extract-domain", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCleanURLHandler(t *testing.T) {
	handlers := NewURLUtilitiesHandlers(utils.NewRedirectResolver(time.Second, "recon-test/1.0"))
	router := gin.New()
	router.POST("/clean", handlers.CleanURLHandler)

	rec := performRequest(router, http.MethodPost, "/clean",
		`{"url": "https://example.com/page?utm_source=x&id=7"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.DetailedCleanURLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://example.com/page?id=7", string(body.CleanedURL))
	require.Len(t, body.RemovedParams, 1)
	assert.Equal(t, "utm_source", body.RemovedParams[0].Parameter)
}

func TestCleanURLHandlerRejectsBadPayload(t *testing.T) {
	handlers := NewURLUtilitiesHandlers(utils.NewRedirectResolver(time.Second, "recon-test/1.0"))
	router := gin.New()
	router.POST("/clean", handlers.CleanURLHandler)

	rec := performRequest(router, http.MethodPost, "/clean", `{"url": "not a url"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performRequest(router, http.MethodPost, "/clean", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveRedirectHandler(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/start" {
			http.Redirect(w, r, "/final", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	handlers := NewURLUtilitiesHandlers(utils.NewRedirectResolver(5*time.Second, "recon-test/1.0"))
	router := gin.New()
	router.GET("/resolve-redirect", handlers.ResolveRedirectHandler)

	rec := performRequest(router, http.MethodGet,
		"/resolve-redirect?url="+upstream.URL+"/start", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ResolveRedirectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, upstream.URL+"/final", string(body.FinalURL))
	assert.True(t, body.Redirected)
}

func TestIPInfoHandler(t *testing.T) {
	handlers := NewNetworkIntelligenceHandlers(utils.NewDNSLookupWithExchanger(&cannedExchanger{}, "127.0.0.1:53"))
	router := gin.New()
	router.GET("/ip-info", handlers.IPInfoHandler)

	rec := performRequest(router, http.MethodGet, "/ip-info?ip=192.168.1.10", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.IPInfoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.IsValid)
	assert.True(t, body.IsPrivate)
	assert.Equal(t, "IPv4", body.Version)

	rec = performRequest(router, http.MethodGet, "/ip-info", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
