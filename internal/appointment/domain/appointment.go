package domain

import (
	"time"

	appdomain "monderh-backend/internal/application/domain"
	authdomain "monderh-backend/internal/auth/domain"
)

// AppointmentStatus is the scheduling state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Durations lists the allowed appointment lengths in minutes
var Durations = []int{30, 60, 90, 120}

// ValidDuration reports whether d is one of the fixed duration values
func ValidDuration(d int) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}

// Appointment is a consultation request. GoogleCalendarLink is set at most
// once, at creation time, and only when the creating user is an admin with a
// valid Google credential.
type Appointment struct {
	ID                 string                `json:"id" gorm:"primaryKey"`
	UserID             string                `json:"user_id" gorm:"index;not null"`
	User               *authdomain.User      `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ServiceType        appdomain.ServiceType `json:"service_type" gorm:"not null"`
	Date               time.Time             `json:"date" gorm:"not null"`
	Time               string                `json:"time" gorm:"not null"` // "15:04"
	Duration           int                   `json:"duration" gorm:"default:60"`
	Subject            string                `json:"subject"`
	Description        string                `json:"description,omitempty" gorm:"type:text"`
	GoogleCalendarLink *string               `json:"google_calendar_link,omitempty"`
	Status             AppointmentStatus     `json:"status" gorm:"default:pending"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
}
