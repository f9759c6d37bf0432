package usecase

import (
	"context"

	appdomain "monderh-backend/internal/application/domain"
)

// SubmitInput carries a candidacy submission. UserID is nil for anonymous
// submissions. CVContent may be empty when no file was attached.
type SubmitInput struct {
	UserID            *string
	Position          string
	ServiceType       appdomain.ServiceType
	CoverLetter       string
	LinkedinURL       string
	ExperienceYears   string
	SalaryExpectation string
	Availability      string
	CVFilename        string
	CVContent         []byte
	CVContentType     string
}

// ApplicationUsecase defines the interface for candidacy use cases
type ApplicationUsecase interface {
	// Submit validates and stores a candidacy. The Drive upload is
	// best-effort: its failure never blocks the submission. Exactly one
	// "application received" email is attempted when the applicant is known.
	Submit(ctx context.Context, in *SubmitInput) (*appdomain.Application, error)

	GetByID(id string) (*appdomain.Application, error)
	List(status *appdomain.ApplicationStatus, limit, offset int) ([]*appdomain.Application, int64, error)

	// Search fuzzy-matches applications by candidate name, position and
	// service, most relevant first
	Search(query string) ([]*appdomain.Application, error)

	// UpdateStatus applies a forward-only transition and attempts exactly one
	// status notification email per non-pending transition.
	UpdateStatus(id string, status appdomain.ApplicationStatus, notes string) (*appdomain.Application, error)

	Delete(id string) error
}
