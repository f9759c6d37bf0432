package usecase

import (
	"time"

	apprepo "monderh-backend/internal/application/repository"
	apptrepo "monderh-backend/internal/appointment/repository"
	authrepo "monderh-backend/internal/auth/repository"
	jobrepo "monderh-backend/internal/job/repository"
	nlrepo "monderh-backend/internal/newsletter/repository"
	"monderh-backend/internal/report/domain"
)

// ReportUsecase builds reporting aggregates from the data store
type ReportUsecase interface {
	// BuildSnapshot re-queries every count and recent list. It is a pure
	// read and tolerates an empty store.
	BuildSnapshot() (*domain.Snapshot, error)

	// Listings returns the full offer catalogue for the renderers that
	// print it.
	Listings() (*domain.Listings, error)
}

type reportUsecase struct {
	userRepo        authrepo.UserRepository
	applicationRepo apprepo.ApplicationRepository
	appointmentRepo apptrepo.AppointmentRepository
	newsletterRepo  nlrepo.NewsletterRepository
	jobRepo         jobrepo.JobRepository
}

// NewReportUsecase creates a new ReportUsecase
func NewReportUsecase(
	userRepo authrepo.UserRepository,
	applicationRepo apprepo.ApplicationRepository,
	appointmentRepo apptrepo.AppointmentRepository,
	newsletterRepo nlrepo.NewsletterRepository,
	jobRepo jobrepo.JobRepository,
) ReportUsecase {
	return &reportUsecase{
		userRepo:        userRepo,
		applicationRepo: applicationRepo,
		appointmentRepo: appointmentRepo,
		newsletterRepo:  newsletterRepo,
		jobRepo:         jobRepo,
	}
}

func (u *reportUsecase) BuildSnapshot() (*domain.Snapshot, error) {
	snap := &domain.Snapshot{
		GeneratedAt:          time.Now(),
		ApplicationsByStatus: map[string]int64{},
		OffersByContractType: map[string]int64{},
		RecentApplications:   []domain.RecentApplication{},
		RecentAppointments:   []domain.RecentAppointment{},
	}

	var err error
	if snap.TotalUsers, err = u.userRepo.Count(); err != nil {
		return nil, err
	}
	if snap.TotalApplications, err = u.applicationRepo.Count(); err != nil {
		return nil, err
	}
	if snap.TotalAppointments, err = u.appointmentRepo.Count(); err != nil {
		return nil, err
	}
	if snap.ActiveSubscriptions, err = u.newsletterRepo.CountActive(); err != nil {
		return nil, err
	}
	if snap.TotalJobOffers, err = u.jobRepo.Count(); err != nil {
		return nil, err
	}
	if snap.ActiveJobOffers, err = u.jobRepo.CountActive(); err != nil {
		return nil, err
	}

	byStatus, err := u.applicationRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	for status, n := range byStatus {
		snap.ApplicationsByStatus[string(status)] = n
	}

	byContract, err := u.jobRepo.CountByContractType()
	if err != nil {
		return nil, err
	}
	for ct, n := range byContract {
		snap.OffersByContractType[string(ct)] = n
	}

	apps, err := u.applicationRepo.Recent(domain.RecentListSize)
	if err != nil {
		return nil, err
	}
	for _, app := range apps {
		name := "Anonyme"
		if app.User != nil {
			name = app.User.DisplayName()
		}
		snap.RecentApplications = append(snap.RecentApplications, domain.RecentApplication{
			ID:            app.ID,
			CandidateName: name,
			Position:      app.Position,
			ServiceType:   string(app.ServiceType),
			Status:        string(app.Status),
			CreatedAt:     app.CreatedAt,
		})
	}

	appts, err := u.appointmentRepo.Recent(domain.RecentListSize)
	if err != nil {
		return nil, err
	}
	for _, appt := range appts {
		name := ""
		if appt.User != nil {
			name = appt.User.DisplayName()
		}
		snap.RecentAppointments = append(snap.RecentAppointments, domain.RecentAppointment{
			ID:          appt.ID,
			PersonName:  name,
			ServiceType: string(appt.ServiceType),
			Date:        appt.Date,
			Time:        appt.Time,
			Status:      string(appt.Status),
		})
	}

	return snap, nil
}

func (u *reportUsecase) Listings() (*domain.Listings, error) {
	offers, _, err := u.jobRepo.FindAll(jobrepo.OfferFilter{}, 1000, 0)
	if err != nil {
		return nil, err
	}

	listings := &domain.Listings{Offers: []domain.OfferRow{}}
	for _, o := range offers {
		listings.Offers = append(listings.Offers, domain.OfferRow{
			ID:              o.ID,
			Title:           o.Title,
			Company:         o.Company,
			Location:        o.Location,
			ContractType:    string(o.ContractType),
			ExperienceLevel: string(o.ExperienceLevel),
			IsActive:        o.IsActive,
			CreatedAt:       o.CreatedAt,
		})
	}
	return listings, nil
}
