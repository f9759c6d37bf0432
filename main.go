package main

import (
	"log"
	"os"

	api "monderh-backend/cmd/api"
	appdomain "monderh-backend/internal/application/domain"
	appRepo "monderh-backend/internal/application/repository"
	appUsecase "monderh-backend/internal/application/usecase"
	apptdomain "monderh-backend/internal/appointment/domain"
	apptRepo "monderh-backend/internal/appointment/repository"
	apptUsecase "monderh-backend/internal/appointment/usecase"
	authdomain "monderh-backend/internal/auth/domain"
	authRepo "monderh-backend/internal/auth/repository"
	authUsecase "monderh-backend/internal/auth/usecase"
	googledomain "monderh-backend/internal/google/domain"
	googleRepo "monderh-backend/internal/google/repository"
	googleUsecase "monderh-backend/internal/google/usecase"
	jobdomain "monderh-backend/internal/job/domain"
	jobRepo "monderh-backend/internal/job/repository"
	jobUsecase "monderh-backend/internal/job/usecase"
	nldomain "monderh-backend/internal/newsletter/domain"
	nlRepo "monderh-backend/internal/newsletter/repository"
	nlUsecase "monderh-backend/internal/newsletter/usecase"
	reportUsecase "monderh-backend/internal/report/usecase"
	settingsdomain "monderh-backend/internal/settings/domain"
	settingsRepo "monderh-backend/internal/settings/repository"
	"monderh-backend/pkg/config"
	"monderh-backend/pkg/database"
	"monderh-backend/pkg/googlecalendar"
	"monderh-backend/pkg/googledrive"
	"monderh-backend/pkg/mailer"

	"github.com/google/uuid"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&googledomain.Credential{},
		&appdomain.Application{},
		&apptdomain.Appointment{},
		&jobdomain.JobOffer{},
		&jobdomain.JobApplication{},
		&nldomain.Newsletter{},
		&settingsdomain.SiteSettings{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	credRepo := googleRepo.NewCredentialRepository(db)
	applicationRepo := appRepo.NewGormApplicationRepository(db)
	appointmentRepo := apptRepo.NewGormAppointmentRepository(db)
	jobRepository := jobRepo.NewGormJobRepository(db)
	newsletterRepo := nlRepo.NewGormNewsletterRepository(db)
	settingsRepository := settingsRepo.NewGormSettingsRepository(db)

	seedAdmin(userRepo)

	// Outbound services
	mailSender := mailer.NewSMTPSender(cfg)
	driveService := googledrive.NewService()
	calendarService := googlecalendar.NewService()

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepo, cfg)
	googleUc := googleUsecase.NewGoogleUsecase(credRepo, driveService, calendarService, cfg)
	applicationUc := appUsecase.NewApplicationUsecase(applicationRepo, userRepo, googleUc, mailSender, cfg.UploadDir)
	appointmentUc := apptUsecase.NewAppointmentUsecase(appointmentRepo, userRepo, googleUc, mailSender)
	jobUc := jobUsecase.NewJobUsecase(jobRepository)
	newsletterUc := nlUsecase.NewNewsletterUsecase(newsletterRepo)
	reportUc := reportUsecase.NewReportUsecase(userRepo, applicationRepo, appointmentRepo, newsletterRepo, jobRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, googleUc, applicationUc, appointmentUc, jobUc, newsletterUc, reportUc, settingsRepository, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// seedAdmin creates the initial admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no account exists for that email
func seedAdmin(userRepo authRepo.UserRepository) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		log.Printf("[WARN] Admin seed lookup failed: %v", err)
		return
	}
	if existing != nil {
		return
	}

	hashed, err := authRepo.HashPassword(password)
	if err != nil {
		log.Printf("[WARN] Admin seed password hash failed: %v", err)
		return
	}

	admin := &authdomain.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  hashed,
		FirstName: "Admin",
		LastName:  "MondeRH",
		UserType:  authdomain.UserTypeAdmin,
		IsActive:  true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("[WARN] Admin seed failed: %v", err)
		return
	}
	log.Printf("Admin account created for %s", email)
}
