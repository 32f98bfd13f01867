package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/recon_api/models"
	"github.com/vit0-9/recon_api/pkg/utils"
)

// URLUtilitiesHandlers groups URL specific utilities.
type URLUtilitiesHandlers struct {
	resolver *utils.RedirectResolver
}

func NewURLUtilitiesHandlers(resolver *utils.RedirectResolver) *URLUtilitiesHandlers {
	return &URLUtilitiesHandlers{resolver: resolver}
}

// CleanURLHandler godoc
// @Summary      Clean a URL
// @Description  Removes known tracking parameters from a given URL.
// @Tags         URL Manipulation
// @Accept       json
// @Produce      json
// @Param        urlRequest body models.CleanURLRequest true "URL to clean"
// @Success      200 {object} models.DetailedCleanURLResponse
// @Failure      400 {object} map[string]string "Error: Invalid request payload"
// @Failure      500 {object} map[string]string "Error: Failed to process URL"
// @Router       /url/clean [post]
func (h *URLUtilitiesHandlers) CleanURLHandler(c *gin.Context) {
	var req models.CleanURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url field is required"})
		return
	}

	cleanResult, err := utils.CleanURL(req.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process URL for cleaning", "details": err.Error()})
		return
	}

	response := models.DetailedCleanURLResponse{
		OriginalURL:   models.SafeURLString(req.URL),
		CleanedURL:    models.SafeURLString(cleanResult.CleanedURL),
		RemovedParams: cleanResult.RemovedParams,
	}
	if len(cleanResult.RemovedParams) == 0 {
		response.Message = "No known tracking parameters found to remove."
	}
	c.JSON(http.StatusOK, response)
}

// ResolveRedirectHandler godoc
// @Summary      Resolve URL Redirects
// @Description  Follows HTTP redirects for a given URL (e.g., a shortlink) and returns the final destination URL. On network failure the normalized input is returned as the final URL.
// @Tags         URL Manipulation
// @Produce      json
// @Param        url query string true "URL to resolve"
// @Success      200 {object} models.ResolveRedirectResponse "Resolved URL or error during resolution"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing URL)"
// @Router       /url/resolve-redirect [get]
func (h *URLUtilitiesHandlers) ResolveRedirectHandler(c *gin.Context) {
	urlQuery := c.Query("url")
	if urlQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	resolution := h.resolver.Resolve(c.Request.Context(), urlQuery)

	c.JSON(http.StatusOK, models.ResolveRedirectResponse{
		OriginalURL: models.SafeURLString(resolution.OriginalURL),
		FinalURL:    models.SafeURLString(resolution.FinalURL),
		Redirected:  resolution.Redirected,
		StatusCode:  resolution.StatusCode,
		Error:       resolution.Error,
	})
}

// ExtractDomainHandler godoc
// @Summary      Extract the domain from a URL
// @Description  Parses a URL's authority, strips a leading "www." and also derives the registrable (eTLD+1) domain.
// @Tags         URL Manipulation
// @Produce      json
// @Param        url query string true "URL to extract the domain from"
// @Success      200 {object} models.ExtractDomainResponse "Extracted domain or error"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing URL)"
// @Router       /url/extract-domain [get]
func (h *URLUtilitiesHandlers) ExtractDomainHandler(c *gin.Context) {
	urlQuery := c.Query("url")
	if urlQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	response := models.ExtractDomainResponse{URL: models.SafeURLString(urlQuery)}

	host := utils.ExtractDomain(urlQuery)
	if host == "" {
		response.Error = "no domain could be extracted"
		c.JSON(http.StatusOK, response)
		return
	}
	response.Domain = host

	if registrable, err := utils.RegistrableDomain(host); err == nil {
		response.RegistrableDomain = registrable
	}

	c.JSON(http.StatusOK, response)
}
