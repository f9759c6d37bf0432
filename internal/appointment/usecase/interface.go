package usecase

import (
	"context"

	appdomain "monderh-backend/internal/application/domain"
	apptdomain "monderh-backend/internal/appointment/domain"
	authdomain "monderh-backend/internal/auth/domain"
)

// CreateInput carries an appointment request
type CreateInput struct {
	ServiceType appdomain.ServiceType
	Date        string // "2006-01-02"
	Time        string // "15:04"
	Duration    int
	Subject     string
	Description string
}

// AppointmentUsecase defines the interface for appointment use cases
type AppointmentUsecase interface {
	// Create stores the appointment. When the creating user is an admin
	// holding a valid Google credential the calendar link is attached; in
	// every other case the appointment is saved with a null link and no
	// error propagates from the integration.
	Create(ctx context.Context, user *authdomain.User, in *CreateInput) (*apptdomain.Appointment, error)

	GetByID(id string) (*apptdomain.Appointment, error)
	ListByUser(userID string) ([]*apptdomain.Appointment, error)
	List(limit, offset int) ([]*apptdomain.Appointment, int64, error)

	// UpdateStatus moves the appointment to the given state; confirmation
	// attempts one best-effort email to the owner.
	UpdateStatus(id string, status apptdomain.AppointmentStatus) (*apptdomain.Appointment, error)
}
