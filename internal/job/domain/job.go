package domain

import (
	"time"

	authdomain "monderh-backend/internal/auth/domain"
)

// ContractType is the employment contract category
type ContractType string

const (
	ContractCDI         ContractType = "CDI"
	ContractCDD         ContractType = "CDD"
	ContractStage       ContractType = "Stage"
	ContractAlternance  ContractType = "Alternance"
)

// ExperienceLevel is the seniority bracket of an offer
type ExperienceLevel string

const (
	ExperienceJunior   ExperienceLevel = "Junior"
	ExperienceConfirme ExperienceLevel = "Confirmé"
	ExperienceSenior   ExperienceLevel = "Senior"
	ExperienceExpert   ExperienceLevel = "Expert"
)

// JobOffer is a published job posting
type JobOffer struct {
	ID              string          `json:"id" gorm:"primaryKey"`
	Title           string          `json:"title" gorm:"not null"`
	Company         string          `json:"company" gorm:"not null"`
	Location        string          `json:"location" gorm:"not null"`
	ContractType    ContractType    `json:"contract_type" gorm:"not null"`
	ExperienceLevel ExperienceLevel `json:"experience_level" gorm:"not null"`
	SalaryRange     string          `json:"salary_range,omitempty"`
	Description     string          `json:"description" gorm:"type:text;not null"`
	Requirements    string          `json:"requirements" gorm:"type:text;not null"`
	Benefits        string          `json:"benefits,omitempty" gorm:"type:text"`
	Department      string          `json:"department,omitempty"`
	IsActive        bool            `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Deleting an offer removes its applications
	Applications []JobApplication `json:"-" gorm:"foreignKey:JobOfferID;constraint:OnDelete:CASCADE"`
}

// JobApplicationStatus mirrors the candidacy review states
type JobApplicationStatus string

const (
	JobAppPending  JobApplicationStatus = "pending"
	JobAppReviewed JobApplicationStatus = "reviewed"
	JobAppAccepted JobApplicationStatus = "accepted"
	JobAppRejected JobApplicationStatus = "rejected"
)

// JobApplication is an application to a specific offer, distinct from the
// spontaneous candidacy entity
type JobApplication struct {
	ID          string               `json:"id" gorm:"primaryKey"`
	JobOfferID  string               `json:"job_offer_id" gorm:"index;not null"`
	UserID      string               `json:"user_id" gorm:"index;not null"`
	User        *authdomain.User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CVFilename  string               `json:"cv_filename,omitempty"`
	CoverLetter string               `json:"cover_letter,omitempty" gorm:"type:text"`
	Status      JobApplicationStatus `json:"status" gorm:"default:pending"`
	Notes       string               `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
