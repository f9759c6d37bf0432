package delivery

import (
	"errors"
	"net/http"
	"net/url"

	"monderh-backend/internal/google/usecase"

	"github.com/gin-gonic/gin"
)

// GoogleHandler exposes the OAuth connect flow and credential status
type GoogleHandler struct {
	googleUsecase usecase.GoogleUsecase
	dashboardURL  string
}

// NewGoogleHandler creates a new GoogleHandler. dashboardURL is where the
// browser lands after the provider callback.
func NewGoogleHandler(googleUsecase usecase.GoogleUsecase, dashboardURL string) *GoogleHandler {
	if dashboardURL == "" {
		dashboardURL = "/dashboard"
	}
	return &GoogleHandler{
		googleUsecase: googleUsecase,
		dashboardURL:  dashboardURL,
	}
}

// Connect handles GET /api/google/connect (authenticated)
func (h *GoogleHandler) Connect(c *gin.Context) {
	userID := c.GetString("userID")

	authURL, err := h.googleUsecase.AuthCodeURL(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"auth_url": authURL})
}

// Callback handles GET /api/google/callback. The request is a browser
// redirect from the provider: identity comes from the signed state, not from
// an Authorization header.
func (h *GoogleHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")

	if state == "" || code == "" {
		h.redirectWithError(c, "La connexion Google a échoué.")
		return
	}

	// userID is empty here: the signed state carries the identity
	_, err := h.googleUsecase.HandleCallback(c.Request.Context(), c.GetString("userID"), state, code)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStateInvalid), errors.Is(err, usecase.ErrStateMismatch):
			h.redirectWithError(c, "Session invalide, veuillez réessayer.")
		case errors.Is(err, usecase.ErrIntegrationUnavailable):
			h.redirectWithError(c, "Google est temporairement indisponible.")
		default:
			h.redirectWithError(c, "La connexion Google a échoué.")
		}
		return
	}

	c.Redirect(http.StatusFound, h.dashboardURL+"?google=connected")
}

// Status handles GET /api/google/status (authenticated)
func (h *GoogleHandler) Status(c *gin.Context) {
	userID := c.GetString("userID")

	connected, err := h.googleUsecase.Status(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"connected": connected})
}

// Disconnect handles DELETE /api/google/connection (authenticated)
func (h *GoogleHandler) Disconnect(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.googleUsecase.Disconnect(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "disconnected"})
}

func (h *GoogleHandler) redirectWithError(c *gin.Context, msg string) {
	c.Redirect(http.StatusFound, h.dashboardURL+"?google=error&message="+url.QueryEscape(msg))
}
