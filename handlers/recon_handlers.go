package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/recon_api/models"
	"github.com/vit0-9/recon_api/pkg/recon"
)

// ReconHandlers exposes the full investigation pipeline over HTTP.
type ReconHandlers struct {
	investigator *recon.Investigator
}

func NewReconHandlers(investigator *recon.Investigator) *ReconHandlers {
	return &ReconHandlers{investigator: investigator}
}

// InvestigateHandler godoc
// @Summary      Investigate a target URL
// @Description  Runs the full pipeline for one target: redirect resolution, domain extraction, DNS record aggregation and WHOIS lookup. Lookup failures are reported inside the report, never as an HTTP error.
// @Tags         Reconnaissance
// @Produce      json
// @Param        target query string true "Target URL or bare domain to investigate"
// @Success      200 {object} models.InvestigationResponse "Per-target investigation report"
// @Failure      400 {object} map[string]string "Error: Invalid input (e.g., missing target)"
// @Router       /recon/investigate [get]
func (h *ReconHandlers) InvestigateHandler(c *gin.Context) {
	target := c.Query("target")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target query parameter is required"})
		return
	}

	report := h.investigator.Investigate(c.Request.Context(), target)

	response := models.InvestigationResponse{Report: report}
	if report.Aborted {
		response.Error = "no domain could be extracted; DNS and WHOIS stages skipped"
	}
	c.JSON(http.StatusOK, response)
}
