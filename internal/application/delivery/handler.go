package delivery

import (
	"io"
	"net/http"
	"strconv"

	appdomain "monderh-backend/internal/application/domain"
	"monderh-backend/internal/application/usecase"
	authdelivery "monderh-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

// maxCVSize caps uploaded CV files at 16MB
const maxCVSize = 16 << 20

// ApplicationHandler handles candidacy HTTP requests
type ApplicationHandler struct {
	appUsecase usecase.ApplicationUsecase
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(appUsecase usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{
		appUsecase: appUsecase,
	}
}

// Submit handles POST /api/applications (multipart form, optional auth)
func (h *ApplicationHandler) Submit(c *gin.Context) {
	in := &usecase.SubmitInput{
		Position:          c.PostForm("position"),
		ServiceType:       appdomain.ServiceType(c.PostForm("service_type")),
		CoverLetter:       c.PostForm("cover_letter"),
		LinkedinURL:       c.PostForm("linkedin_url"),
		ExperienceYears:   c.PostForm("experience_years"),
		SalaryExpectation: c.PostForm("salary_expectation"),
		Availability:      c.PostForm("availability"),
	}

	if user := authdelivery.CurrentUser(c); user != nil {
		in.UserID = &user.ID
	}

	if fileHeader, err := c.FormFile("cv_file"); err == nil {
		if fileHeader.Size > maxCVSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "CV file too large"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read CV file"})
			return
		}
		defer f.Close()

		content, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read CV file"})
			return
		}

		in.CVFilename = fileHeader.Filename
		in.CVContent = content
		in.CVContentType = fileHeader.Header.Get("Content-Type")
	}

	app, err := h.appUsecase.Submit(c.Request.Context(), in)
	if err != nil {
		if err.Error() == "position is required" || err.Error() == "unknown service type" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// List handles GET /api/admin/applications?status=pending&limit=20&offset=0
func (h *ApplicationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var statusPtr *appdomain.ApplicationStatus
	if s := c.Query("status"); s != "" {
		status := appdomain.ApplicationStatus(s)
		statusPtr = &status
	}

	apps, total, err := h.appUsecase.List(statusPtr, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        total,
	})
}

// Search handles GET /api/admin/applications/search?q=dupont
func (h *ApplicationHandler) Search(c *gin.Context) {
	apps, err := h.appUsecase.Search(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// GetByID handles GET /api/admin/applications/:id
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	app, err := h.appUsecase.GetByID(c.Param("id"))
	if err != nil {
		if err.Error() == "application not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app)
}

// UpdateStatusRequest is the body for PATCH /api/admin/applications/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed accepted rejected"`
	Notes  string `json:"notes"`
}

// UpdateStatus handles PATCH /api/admin/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.appUsecase.UpdateStatus(c.Param("id"), appdomain.ApplicationStatus(req.Status), req.Notes)
	if err != nil {
		switch err.Error() {
		case "application not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		case "invalid status transition":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, app)
}

// Delete handles DELETE /api/admin/applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	if err := h.appUsecase.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "application deleted"})
}
