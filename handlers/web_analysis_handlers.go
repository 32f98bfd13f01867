package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/recon_api/models"
	"github.com/vit0-9/recon_api/pkg/utils"
)

// WebAnalysisHandlers groups web page analysis utilities.
type WebAnalysisHandlers struct{}

func NewWebAnalysisHandlers() *WebAnalysisHandlers {
	return &WebAnalysisHandlers{}
}

// StackAnalyzerHandler godoc
// @Summary      Analyze technology stack of a website
// @Description  Fetches a URL and uses Wappalyzergo to identify technologies used on the final landing page.
// @Tags         Web Analysis
// @Produce      json
// @Param        url query string true "URL of the website to analyze"
// @Success      200 {object} models.StackAnalyzerResponse "Detected technologies or error during analysis"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing URL)"
// @Router       /web/stack-analyzer [get]
func (h *WebAnalysisHandlers) StackAnalyzerHandler(c *gin.Context) {
	urlQuery := c.Query("url")
	if urlQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	detected, finalURL, err := utils.AnalyzeStack(urlQuery)
	if err != nil {
		if strings.Contains(err.Error(), "wappalyzer client") {
			log.Printf("StackAnalyzerHandler critical error: %v", err)
			c.JSON(http.StatusInternalServerError, models.StackAnalyzerResponse{
				RequestURL: urlQuery,
				Error:      "Technology stack analyzer is currently unavailable.",
			})
			return
		}
		c.JSON(http.StatusOK, models.StackAnalyzerResponse{
			RequestURL: urlQuery,
			FinalURL:   finalURL,
			Error:      err.Error(),
		})
		return
	}

	technologies := make([]models.DetectedTechnology, len(detected))
	for i, tech := range detected {
		technologies[i] = models.DetectedTechnology{
			Name:        tech.Name,
			Version:     tech.Version,
			Categories:  tech.Categories,
			Description: tech.Description,
			Website:     tech.Website,
			Icon:        tech.Icon,
			CPE:         tech.CPE,
		}
	}

	c.JSON(http.StatusOK, models.StackAnalyzerResponse{
		RequestURL:   urlQuery,
		FinalURL:     finalURL,
		Technologies: technologies,
	})
}

// HTTPHeadersHandler godoc
// @Summary      View HTTP response headers for a URL
// @Description  Fetches and displays the HTTP response headers from a given URL, following redirects.
// @Tags         Web Analysis
// @Produce      json
// @Param        url query string true "URL to fetch headers from"
// @Success      200 {object} models.HTTPHeadersResponse "HTTP headers or error during fetch"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing URL)"
// @Router       /web/http-headers [get]
func (h *WebAnalysisHandlers) HTTPHeadersHandler(c *gin.Context) {
	urlQuery := c.Query("url")
	if urlQuery == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	fetchResult, err := utils.FetchURL(urlQuery)
	if err != nil {
		response := models.HTTPHeadersResponse{
			RequestURL: urlQuery,
			Error:      err.Error(),
		}
		if fetchResult != nil {
			response.FinalURL = fetchResult.FinalURL
			response.StatusCode = fetchResult.StatusCode
			response.Status = fetchResult.Status
		}
		c.JSON(http.StatusOK, response)
		return
	}

	c.JSON(http.StatusOK, models.HTTPHeadersResponse{
		RequestURL: urlQuery,
		FinalURL:   fetchResult.FinalURL,
		StatusCode: fetchResult.StatusCode,
		Status:     fetchResult.Status,
		Headers:    fetchResult.Headers,
	})
}
