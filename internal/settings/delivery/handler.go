package delivery

import (
	"net/http"

	"monderh-backend/internal/settings/repository"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles site settings HTTP requests
type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsRepo repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{settingsRepo: settingsRepo}
}

// Get handles GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsRepo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateRequest is the body for PUT /api/admin/settings
type UpdateRequest struct {
	SiteName     string `json:"site_name"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Address      string `json:"address"`
	HeroTitle    string `json:"hero_title"`
	HeroSubtitle string `json:"hero_subtitle"`
	LinkedinURL  string `json:"linkedin_url"`
	TwitterURL   string `json:"twitter_url"`
	FacebookURL  string `json:"facebook_url"`
	InstagramURL string `json:"instagram_url"`
}

// Update handles PUT /api/admin/settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsRepo.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	settings.SiteName = req.SiteName
	settings.Description = req.Description
	settings.ContactEmail = req.ContactEmail
	settings.ContactPhone = req.ContactPhone
	settings.Address = req.Address
	settings.HeroTitle = req.HeroTitle
	settings.HeroSubtitle = req.HeroSubtitle
	settings.LinkedinURL = req.LinkedinURL
	settings.TwitterURL = req.TwitterURL
	settings.FacebookURL = req.FacebookURL
	settings.InstagramURL = req.InstagramURL

	if err := h.settingsRepo.Update(settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}
