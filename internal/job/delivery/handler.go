package delivery

import (
	"net/http"
	"strconv"

	jobdomain "monderh-backend/internal/job/domain"
	"monderh-backend/internal/job/repository"
	"monderh-backend/internal/job/usecase"

	"github.com/gin-gonic/gin"
)

// JobHandler handles job offer HTTP requests
type JobHandler struct {
	jobUsecase usecase.JobUsecase
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobUsecase usecase.JobUsecase) *JobHandler {
	return &JobHandler{
		jobUsecase: jobUsecase,
	}
}

// ListPublic handles GET /api/jobs?search=&contract_type=&experience_level=&limit=&offset=
func (h *JobHandler) ListPublic(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := repository.OfferFilter{
		Search:          c.Query("search"),
		ContractType:    c.Query("contract_type"),
		ExperienceLevel: c.Query("experience_level"),
	}

	offers, total, err := h.jobUsecase.ListPublic(filter, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  offers,
		"total": total,
	})
}

// GetDetail handles GET /api/jobs/:id
func (h *JobHandler) GetDetail(c *gin.Context) {
	offer, similar, err := h.jobUsecase.GetDetail(c.Param("id"))
	if err != nil {
		if err.Error() == "job offer not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":          offer,
		"similar_jobs": similar,
	})
}

// ApplyRequest is the body for POST /api/jobs/:id/apply
type ApplyRequest struct {
	CVFilename  string `json:"cv_filename"`
	CoverLetter string `json:"cover_letter"`
}

// Apply handles POST /api/jobs/:id/apply (authenticated)
func (h *JobHandler) Apply(c *gin.Context) {
	userID := c.GetString("userID")

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.jobUsecase.Apply(c.Param("id"), userID, req.CVFilename, req.CoverLetter)
	if err != nil {
		switch err.Error() {
		case "job offer not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Job offer not found"})
		case "job offer is closed":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListApplications handles GET /api/admin/jobs/:id/applications
func (h *JobHandler) ListApplications(c *gin.Context) {
	apps, err := h.jobUsecase.ListApplications(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// OfferRequest is the body for offer create/update
type OfferRequest struct {
	Title           string `json:"title" binding:"required"`
	Company         string `json:"company" binding:"required"`
	Location        string `json:"location" binding:"required"`
	ContractType    string `json:"contract_type" binding:"required,oneof=CDI CDD Stage Alternance"`
	ExperienceLevel string `json:"experience_level" binding:"required,oneof=Junior Confirmé Senior Expert"`
	SalaryRange     string `json:"salary_range"`
	Description     string `json:"description" binding:"required"`
	Requirements    string `json:"requirements" binding:"required"`
	Benefits        string `json:"benefits"`
	Department      string `json:"department"`
	IsActive        *bool  `json:"is_active"`
}

func (r *OfferRequest) toDomain() *jobdomain.JobOffer {
	offer := &jobdomain.JobOffer{
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		ContractType:    jobdomain.ContractType(r.ContractType),
		ExperienceLevel: jobdomain.ExperienceLevel(r.ExperienceLevel),
		SalaryRange:     r.SalaryRange,
		Description:     r.Description,
		Requirements:    r.Requirements,
		Benefits:        r.Benefits,
		Department:      r.Department,
		IsActive:        true,
	}
	if r.IsActive != nil {
		offer.IsActive = *r.IsActive
	}
	return offer
}

// Create handles POST /api/admin/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer := req.toDomain()
	if err := h.jobUsecase.Create(offer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, offer)
}

// Update handles PUT /api/admin/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	offer, err := h.jobUsecase.Update(c.Param("id"), req.toDomain())
	if err != nil {
		if err.Error() == "job offer not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, offer)
}

// Delete handles DELETE /api/admin/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUsecase.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "job offer deleted"})
}

// ListAll handles GET /api/admin/jobs (active and inactive)
func (h *JobHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	offers, total, err := h.jobUsecase.ListAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  offers,
		"total": total,
	})
}
