package domain

import (
	"time"

	authdomain "monderh-backend/internal/auth/domain"
)

// ServiceType is the agency service a submission targets
type ServiceType string

const (
	ServiceRecrutement ServiceType = "recrutement"
	ServiceCoaching    ServiceType = "coaching"
	ServiceFormation   ServiceType = "formation"
	ServiceInterim     ServiceType = "interim"
	ServiceConseil     ServiceType = "conseil"
)

// ValidServiceType reports whether s is one of the five agency services
func ValidServiceType(s ServiceType) bool {
	switch s {
	case ServiceRecrutement, ServiceCoaching, ServiceFormation, ServiceInterim, ServiceConseil:
		return true
	}
	return false
}

// ApplicationStatus is the review state of a candidacy
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Application is a spontaneous candidacy. UserID is nullable: anonymous
// submissions are accepted, they just never receive status emails.
type Application struct {
	ID                string            `json:"id" gorm:"primaryKey"`
	UserID            *string           `json:"user_id,omitempty" gorm:"index"`
	User              *authdomain.User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Position          string            `json:"position" gorm:"not null"`
	ServiceType       ServiceType       `json:"service_type" gorm:"not null"`
	CVFilename        string            `json:"cv_filename,omitempty"`
	GoogleDriveLink   *string           `json:"google_drive_link,omitempty"`
	CoverLetter       string            `json:"cover_letter,omitempty" gorm:"type:text"`
	LinkedinURL       string            `json:"linkedin_url,omitempty"`
	ExperienceYears   string            `json:"experience_years,omitempty"`
	SalaryExpectation string            `json:"salary_expectation,omitempty"`
	Availability      string            `json:"availability,omitempty"`
	Status            ApplicationStatus `json:"status" gorm:"default:pending"`
	Notes             string            `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// CanTransition reports whether a status change is allowed. Transitions are
// forward-only: pending -> reviewed -> {accepted, rejected}; pending may jump
// straight to a terminal state. Nothing moves back to pending.
func CanTransition(from, to ApplicationStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusReviewed || to == StatusAccepted || to == StatusRejected
	case StatusReviewed:
		return to == StatusAccepted || to == StatusRejected
	}
	return false
}
