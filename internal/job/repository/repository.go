package repository

import jobdomain "monderh-backend/internal/job/domain"

// OfferFilter narrows job offer listings
type OfferFilter struct {
	Search          string
	ContractType    string
	ExperienceLevel string
	ActiveOnly      bool
}

// JobRepository defines the interface for job offer data access
type JobRepository interface {
	Create(offer *jobdomain.JobOffer) error
	FindByID(id string) (*jobdomain.JobOffer, error)
	FindAll(filter OfferFilter, limit, offset int) ([]*jobdomain.JobOffer, int64, error)

	// FindSimilar returns up to n other active offers sharing the department
	// or contract type
	FindSimilar(offer *jobdomain.JobOffer, n int) ([]*jobdomain.JobOffer, error)

	Count() (int64, error)
	CountActive() (int64, error)
	CountByContractType() (map[jobdomain.ContractType]int64, error)

	Update(offer *jobdomain.JobOffer) error
	Delete(id string) error

	CreateApplication(app *jobdomain.JobApplication) error
	FindApplicationsByOffer(offerID string) ([]*jobdomain.JobApplication, error)
}
