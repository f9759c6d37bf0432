package delivery

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"monderh-backend/internal/report/renderer"
	"monderh-backend/internal/report/usecase"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles report export HTTP requests
type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// Stats handles GET /api/admin/reports/stats
func (h *ReportHandler) Stats(c *gin.Context) {
	snap, err := h.reportUsecase.BuildSnapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Export handles GET /api/admin/reports/export?format=csv|xlsx|pdf|png
func (h *ReportHandler) Export(c *gin.Context) {
	format := c.Query("format")
	rend, err := renderer.ByFormat(format)
	if err != nil {
		if errors.Is(err, renderer.ErrUnknownFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown export format: " + format})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	snap, err := h.reportUsecase.BuildSnapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	listings, err := h.reportUsecase.Listings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	artifact, err := rend.Render(snap, listings)
	if err != nil {
		log.Printf("[WARN] report rendering failed (format=%s): %v", format, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Report generation failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.MimeType, artifact.Data)
}
