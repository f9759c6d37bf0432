package delivery

import (
	"net/http"
	"strconv"

	"monderh-backend/internal/newsletter/usecase"

	"github.com/gin-gonic/gin"
)

// NewsletterHandler handles newsletter HTTP requests
type NewsletterHandler struct {
	newsletterUsecase usecase.NewsletterUsecase
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(newsletterUsecase usecase.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{newsletterUsecase: newsletterUsecase}
}

// SubscribeRequest is the body for POST /api/newsletter/subscribe
type SubscribeRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Company   string   `json:"company"`
	Interests []string `json:"interests"`
}

// Subscribe handles POST /api/newsletter/subscribe
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, already, err := h.newsletterUsecase.Subscribe(usecase.SubscribeInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Interests: req.Interests,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if already {
		c.JSON(http.StatusOK, gin.H{"message": "Cette adresse est déjà inscrite à la newsletter"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Inscription à la newsletter confirmée",
		"subscriber": sub,
	})
}

// UnsubscribeRequest is the body for POST /api/newsletter/unsubscribe
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Unsubscribe handles POST /api/newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.newsletterUsecase.Unsubscribe(req.Email); err != nil {
		if err.Error() == "subscriber not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscriber not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Désinscription confirmée"})
}

// List handles GET /api/admin/newsletter
func (h *NewsletterHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	subs, total, err := h.newsletterUsecase.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subscribers": subs,
		"total":       total,
	})
}
