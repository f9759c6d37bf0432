package usecase

import (
	"errors"

	jobdomain "monderh-backend/internal/job/domain"
	"monderh-backend/internal/job/repository"
)

// similarOffersCap bounds the "similar offers" block on the detail page
const similarOffersCap = 3

// JobUsecase defines the interface for job offer use cases
type JobUsecase interface {
	// ListPublic returns active offers matching the filter, newest first
	ListPublic(filter repository.OfferFilter, limit, offset int) ([]*jobdomain.JobOffer, int64, error)

	// GetDetail returns the offer with up to 3 similar active offers
	GetDetail(id string) (*jobdomain.JobOffer, []*jobdomain.JobOffer, error)

	// Apply records a job application for an authenticated user
	Apply(offerID, userID, cvFilename, coverLetter string) (*jobdomain.JobApplication, error)

	ListApplications(offerID string) ([]*jobdomain.JobApplication, error)

	Create(offer *jobdomain.JobOffer) error
	Update(id string, offer *jobdomain.JobOffer) (*jobdomain.JobOffer, error)
	Delete(id string) error
	ListAll(limit, offset int) ([]*jobdomain.JobOffer, int64, error)
}

// jobUsecase implements JobUsecase
type jobUsecase struct {
	jobRepo repository.JobRepository
}

// NewJobUsecase creates a new instance of jobUsecase
func NewJobUsecase(jobRepo repository.JobRepository) JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) ListPublic(filter repository.OfferFilter, limit, offset int) ([]*jobdomain.JobOffer, int64, error) {
	filter.ActiveOnly = true
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return u.jobRepo.FindAll(filter, limit, offset)
}

func (u *jobUsecase) GetDetail(id string) (*jobdomain.JobOffer, []*jobdomain.JobOffer, error) {
	offer, err := u.jobRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	if offer == nil {
		return nil, nil, errors.New("job offer not found")
	}

	similar, err := u.jobRepo.FindSimilar(offer, similarOffersCap)
	if err != nil {
		return nil, nil, err
	}

	return offer, similar, nil
}

func (u *jobUsecase) Apply(offerID, userID, cvFilename, coverLetter string) (*jobdomain.JobApplication, error) {
	offer, err := u.jobRepo.FindByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, errors.New("job offer not found")
	}
	if !offer.IsActive {
		return nil, errors.New("job offer is closed")
	}

	app := &jobdomain.JobApplication{
		JobOfferID:  offerID,
		UserID:      userID,
		CVFilename:  cvFilename,
		CoverLetter: coverLetter,
		Status:      jobdomain.JobAppPending,
	}
	if err := u.jobRepo.CreateApplication(app); err != nil {
		return nil, err
	}

	return app, nil
}

func (u *jobUsecase) ListApplications(offerID string) ([]*jobdomain.JobApplication, error) {
	return u.jobRepo.FindApplicationsByOffer(offerID)
}

func (u *jobUsecase) Create(offer *jobdomain.JobOffer) error {
	if offer.Title == "" || offer.Company == "" || offer.Location == "" {
		return errors.New("title, company and location are required")
	}
	if offer.Description == "" || offer.Requirements == "" {
		return errors.New("description and requirements are required")
	}
	return u.jobRepo.Create(offer)
}

func (u *jobUsecase) Update(id string, in *jobdomain.JobOffer) (*jobdomain.JobOffer, error) {
	offer, err := u.jobRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, errors.New("job offer not found")
	}

	offer.Title = in.Title
	offer.Company = in.Company
	offer.Location = in.Location
	offer.ContractType = in.ContractType
	offer.ExperienceLevel = in.ExperienceLevel
	offer.SalaryRange = in.SalaryRange
	offer.Description = in.Description
	offer.Requirements = in.Requirements
	offer.Benefits = in.Benefits
	offer.Department = in.Department
	offer.IsActive = in.IsActive

	if err := u.jobRepo.Update(offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (u *jobUsecase) Delete(id string) error {
	return u.jobRepo.Delete(id)
}

func (u *jobUsecase) ListAll(limit, offset int) ([]*jobdomain.JobOffer, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return u.jobRepo.FindAll(repository.OfferFilter{}, limit, offset)
}
