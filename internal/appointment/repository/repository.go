package repository

import apptdomain "monderh-backend/internal/appointment/domain"

// AppointmentRepository defines the interface for appointment data access
type AppointmentRepository interface {
	Create(appt *apptdomain.Appointment) error
	FindByID(id string) (*apptdomain.Appointment, error)
	FindByUser(userID string) ([]*apptdomain.Appointment, error)
	FindAll(limit, offset int) ([]*apptdomain.Appointment, int64, error)

	// Recent returns the n most recent appointments with User preloaded
	Recent(n int) ([]*apptdomain.Appointment, error)

	Count() (int64, error)
	Update(appt *apptdomain.Appointment) error
}
