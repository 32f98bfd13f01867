// @title           Recon API
// @version         1.0
// @description     Domain reconnaissance utilities: redirect resolution, domain extraction, DNS record aggregation, WHOIS, SSL and web analysis.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vit0-9/recon_api/docs"
	"github.com/vit0-9/recon_api/handlers"
	"github.com/vit0-9/recon_api/pkg/recon"
	"github.com/vit0-9/recon_api/pkg/utils"
)

// App encapsulates all the components of the application.
type App struct {
	Router              *gin.Engine
	ReconHandlers       *handlers.ReconHandlers
	NetIntelHandlers    *handlers.NetworkIntelligenceHandlers
	URLUtilHandlers     *handlers.URLUtilitiesHandlers
	WebAnalysisHandlers *handlers.WebAnalysisHandlers
	HealthHandler       *handlers.HealthHandler
}

// NewApp creates and initializes a new application instance. The error
// path is the startup dependency check: without a usable DNS resolver
// configuration none of the lookup endpoints can work.
func NewApp(cfg recon.Config) (*App, error) {
	investigator, err := recon.NewInvestigator(cfg)
	if err != nil {
		return nil, err
	}

	server := cfg.DNSServer
	if server == "" {
		// NewInvestigator already proved this resolves
		server, _ = utils.SystemResolverAddress()
	}
	dnsLookup := utils.NewDNSLookup(server, cfg.DNSTimeout)
	resolver := utils.NewRedirectResolver(cfg.HTTPTimeout, cfg.UserAgent)

	app := &App{
		Router:              gin.Default(),
		ReconHandlers:       handlers.NewReconHandlers(investigator),
		NetIntelHandlers:    handlers.NewNetworkIntelligenceHandlers(dnsLookup),
		URLUtilHandlers:     handlers.NewURLUtilitiesHandlers(resolver),
		WebAnalysisHandlers: handlers.NewWebAnalysisHandlers(),
		HealthHandler:       handlers.NewHealthHandler(),
	}

	app.setupRoutes()
	return app, nil
}

// setupRoutes defines all the application routes.
func (app *App) setupRoutes() {
	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)

	reconV1 := app.Router.Group("/api/v1/recon")
	{
		reconV1.GET("/investigate", app.ReconHandlers.InvestigateHandler)
	}

	netIntelV1 := app.Router.Group("/api/v1/net")
	{
		netIntelV1.GET("/dns-lookup", app.NetIntelHandlers.DNSLookupHandler)
		netIntelV1.GET("/ip-info", app.NetIntelHandlers.IPInfoHandler)
		netIntelV1.GET("/whois-lookup", app.NetIntelHandlers.WhoisLookupHandler)
		netIntelV1.GET("/ssl-check", app.NetIntelHandlers.SSLCheckHandler)
	}

	urlUtilV1 := app.Router.Group("/api/v1/url")
	{
		urlUtilV1.POST("/clean", app.URLUtilHandlers.CleanURLHandler)
		urlUtilV1.GET("/resolve-redirect", app.URLUtilHandlers.ResolveRedirectHandler)
		urlUtilV1.GET("/extract-domain", app.URLUtilHandlers.ExtractDomainHandler)
	}

	webAnalysisV1 := app.Router.Group("/api/v1/web")
	{
		webAnalysisV1.GET("/stack-analyzer", app.WebAnalysisHandlers.StackAnalyzerHandler)
		webAnalysisV1.GET("/http-headers", app.WebAnalysisHandlers.HTTPHeadersHandler)
	}

	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start runs the Gin HTTP server.
func (app *App) Start(addr string) error {
	log.Printf("API server starting on %s", addr)
	return app.Router.Run(addr)
}
