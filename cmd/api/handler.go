package api

import (
	appDelivery "monderh-backend/internal/application/delivery"
	appUsecasePkg "monderh-backend/internal/application/usecase"
	apptDelivery "monderh-backend/internal/appointment/delivery"
	apptUsecasePkg "monderh-backend/internal/appointment/usecase"
	authUsecasePkg "monderh-backend/internal/auth/usecase"
	googleDelivery "monderh-backend/internal/google/delivery"
	googleUsecasePkg "monderh-backend/internal/google/usecase"
	jobDelivery "monderh-backend/internal/job/delivery"
	jobUsecasePkg "monderh-backend/internal/job/usecase"
	nlDelivery "monderh-backend/internal/newsletter/delivery"
	nlUsecasePkg "monderh-backend/internal/newsletter/usecase"
	reportDelivery "monderh-backend/internal/report/delivery"
	reportUsecasePkg "monderh-backend/internal/report/usecase"
	settingsDelivery "monderh-backend/internal/settings/delivery"
	settingsRepo "monderh-backend/internal/settings/repository"
	"monderh-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase        authUsecasePkg.AuthUsecase
	googleHandler      *googleDelivery.GoogleHandler
	applicationHandler *appDelivery.ApplicationHandler
	appointmentHandler *apptDelivery.AppointmentHandler
	jobHandler         *jobDelivery.JobHandler
	newsletterHandler  *nlDelivery.NewsletterHandler
	reportHandler      *reportDelivery.ReportHandler
	settingsHandler    *settingsDelivery.SettingsHandler
}

func NewHandler(
	authUc authUsecasePkg.AuthUsecase,
	googleUc googleUsecasePkg.GoogleUsecase,
	appUc appUsecasePkg.ApplicationUsecase,
	apptUc apptUsecasePkg.AppointmentUsecase,
	jobUc jobUsecasePkg.JobUsecase,
	nlUc nlUsecasePkg.NewsletterUsecase,
	reportUc reportUsecasePkg.ReportUsecase,
	settingsRepository settingsRepo.SettingsRepository,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:        authUc,
		googleHandler:      googleDelivery.NewGoogleHandler(googleUc, cfg.FrontendURL),
		applicationHandler: appDelivery.NewApplicationHandler(appUc),
		appointmentHandler: apptDelivery.NewAppointmentHandler(apptUc),
		jobHandler:         jobDelivery.NewJobHandler(jobUc),
		newsletterHandler:  nlDelivery.NewNewsletterHandler(nlUc),
		reportHandler:      reportDelivery.NewReportHandler(reportUc),
		settingsHandler:    settingsDelivery.NewSettingsHandler(settingsRepository),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
