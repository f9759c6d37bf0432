package delivery

import (
	"net/http"
	"strconv"

	appdomain "monderh-backend/internal/application/domain"
	apptdomain "monderh-backend/internal/appointment/domain"
	"monderh-backend/internal/appointment/usecase"
	authdelivery "monderh-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler handles appointment HTTP requests
type AppointmentHandler struct {
	apptUsecase usecase.AppointmentUsecase
}

// NewAppointmentHandler creates a new AppointmentHandler
func NewAppointmentHandler(apptUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{
		apptUsecase: apptUsecase,
	}
}

// CreateRequest is the body for POST /api/appointments
type CreateRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Duration    int    `json:"duration"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description"`
}

// Create handles POST /api/appointments (authenticated)
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Duration == 0 {
		req.Duration = 60
	}

	user := authdelivery.CurrentUser(c)
	appt, err := h.apptUsecase.Create(c.Request.Context(), user, &usecase.CreateInput{
		ServiceType: appdomain.ServiceType(req.ServiceType),
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// ListMine handles GET /api/appointments (authenticated)
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID := c.GetString("userID")

	appts, err := h.apptUsecase.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// List handles GET /api/admin/appointments?limit=20&offset=0
func (h *AppointmentHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	appts, total, err := h.apptUsecase.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": appts,
		"total":        total,
	})
}

// UpdateStatusRequest is the body for PATCH /api/admin/appointments/:id/status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

// UpdateStatus handles PATCH /api/admin/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appt, err := h.apptUsecase.UpdateStatus(c.Param("id"), apptdomain.AppointmentStatus(req.Status))
	if err != nil {
		if err.Error() == "appointment not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, appt)
}
