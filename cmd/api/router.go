package api

import (
	"net/http"

	authDelivery "monderh-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	authHandler := authDelivery.NewAuthHandler(h.authUsecase)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(h.authUsecase), authHandler.Me)
		}

		// Public site content
		api.GET("/settings", h.settingsHandler.Get)
		api.GET("/jobs", h.jobHandler.ListPublic)
		api.GET("/jobs/:id", h.jobHandler.GetDetail)
		api.POST("/jobs/:id/apply", authDelivery.AuthMiddleware(h.authUsecase), h.jobHandler.Apply)

		// Spontaneous applications accept anonymous submissions
		api.POST("/applications", authDelivery.OptionalAuthMiddleware(h.authUsecase), h.applicationHandler.Submit)

		// Newsletter
		api.POST("/newsletter/subscribe", h.newsletterHandler.Subscribe)
		api.POST("/newsletter/unsubscribe", h.newsletterHandler.Unsubscribe)

		// Appointments (protected)
		appointments := api.Group("/appointments")
		appointments.Use(authDelivery.AuthMiddleware(h.authUsecase))
		{
			appointments.POST("", h.appointmentHandler.Create)
			appointments.GET("/me", h.appointmentHandler.ListMine)
		}

		// Google integration. The callback is a browser redirect from the
		// provider and carries no Authorization header; identity comes from
		// the signed state parameter.
		google := api.Group("/google")
		{
			google.GET("/callback", h.googleHandler.Callback)
			google.GET("/connect", authDelivery.AuthMiddleware(h.authUsecase), h.googleHandler.Connect)
			google.GET("/status", authDelivery.AuthMiddleware(h.authUsecase), h.googleHandler.Status)
			google.DELETE("/disconnect", authDelivery.AuthMiddleware(h.authUsecase), h.googleHandler.Disconnect)
		}

		// Admin routes (protected + admin only)
		admin := api.Group("/admin")
		admin.Use(authDelivery.AuthMiddleware(h.authUsecase), authDelivery.AdminMiddleware())
		{
			admin.GET("/applications", h.applicationHandler.List)
			admin.GET("/applications/search", h.applicationHandler.Search)
			admin.GET("/applications/:id", h.applicationHandler.GetByID)
			admin.PATCH("/applications/:id/status", h.applicationHandler.UpdateStatus)
			admin.DELETE("/applications/:id", h.applicationHandler.Delete)

			admin.GET("/appointments", h.appointmentHandler.List)
			admin.PATCH("/appointments/:id/status", h.appointmentHandler.UpdateStatus)

			admin.GET("/jobs", h.jobHandler.ListAll)
			admin.POST("/jobs", h.jobHandler.Create)
			admin.PUT("/jobs/:id", h.jobHandler.Update)
			admin.DELETE("/jobs/:id", h.jobHandler.Delete)
			admin.GET("/jobs/:id/applications", h.jobHandler.ListApplications)

			admin.GET("/newsletter", h.newsletterHandler.List)

			admin.GET("/reports/stats", h.reportHandler.Stats)
			admin.GET("/reports/export", h.reportHandler.Export)

			admin.PUT("/settings", h.settingsHandler.Update)
		}
	}
}
