package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	appdomain "monderh-backend/internal/application/domain"
	apptdomain "monderh-backend/internal/appointment/domain"
	authdomain "monderh-backend/internal/auth/domain"
	authrepo "monderh-backend/internal/auth/repository"
	"monderh-backend/internal/appointment/repository"
	googleUsecase "monderh-backend/internal/google/usecase"
	"monderh-backend/pkg/googlecalendar"
	"monderh-backend/pkg/mailer"
)

// appointmentUsecase implements AppointmentUsecase
type appointmentUsecase struct {
	apptRepo repository.AppointmentRepository
	userRepo authrepo.UserRepository
	googleUc googleUsecase.GoogleUsecase
	mail     mailer.Sender
}

// NewAppointmentUsecase creates a new instance of appointmentUsecase
func NewAppointmentUsecase(apptRepo repository.AppointmentRepository, userRepo authrepo.UserRepository, googleUc googleUsecase.GoogleUsecase, mail mailer.Sender) AppointmentUsecase {
	return &appointmentUsecase{
		apptRepo: apptRepo,
		userRepo: userRepo,
		googleUc: googleUc,
		mail:     mail,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, user *authdomain.User, in *CreateInput) (*apptdomain.Appointment, error) {
	if user == nil {
		return nil, errors.New("user is required")
	}
	if !appdomain.ValidServiceType(in.ServiceType) {
		return nil, errors.New("unknown service type")
	}
	if !apptdomain.ValidDuration(in.Duration) {
		return nil, errors.New("invalid duration")
	}

	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return nil, errors.New("invalid date format")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, errors.New("invalid time format")
	}
	if in.Subject == "" {
		return nil, errors.New("subject is required")
	}

	appt := &apptdomain.Appointment{
		UserID:      user.ID,
		ServiceType: in.ServiceType,
		Date:        date,
		Time:        in.Time,
		Duration:    in.Duration,
		Subject:     in.Subject,
		Description: in.Description,
		Status:      apptdomain.StatusPending,
	}

	// Calendar sync is limited to admins and only happens at creation time.
	// A missing or dead credential leaves the link null without failing the
	// write.
	if user.IsAdmin() {
		if start, err := u.eventStart(date, in.Time); err == nil {
			result := u.googleUc.CreateAppointmentEvent(ctx, user.ID, googlecalendar.EventInput{
				Summary:        in.Subject,
				Description:    in.Description,
				Start:          start,
				DurationMin:    in.Duration,
				OrganizerName:  user.DisplayName(),
				OrganizerEmail: user.Email,
			})
			if result.OK() {
				appt.GoogleCalendarLink = &result.Link
			} else if result.Err != nil {
				log.Printf("[WARN] calendar sync skipped (%s): %v", result.Failure, result.Err)
			}
		}
	}

	if err := u.apptRepo.Create(appt); err != nil {
		return nil, err
	}

	return appt, nil
}

func (u *appointmentUsecase) GetByID(id string) (*apptdomain.Appointment, error) {
	appt, err := u.apptRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, errors.New("appointment not found")
	}
	return appt, nil
}

func (u *appointmentUsecase) ListByUser(userID string) ([]*apptdomain.Appointment, error) {
	return u.apptRepo.FindByUser(userID)
}

func (u *appointmentUsecase) List(limit, offset int) ([]*apptdomain.Appointment, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return u.apptRepo.FindAll(limit, offset)
}

func (u *appointmentUsecase) UpdateStatus(id string, status apptdomain.AppointmentStatus) (*apptdomain.Appointment, error) {
	switch status {
	case apptdomain.StatusPending, apptdomain.StatusConfirmed, apptdomain.StatusCancelled, apptdomain.StatusCompleted:
	default:
		return nil, errors.New("unknown appointment status")
	}

	appt, err := u.apptRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, errors.New("appointment not found")
	}

	appt.Status = status
	if err := u.apptRepo.Update(appt); err != nil {
		return nil, err
	}

	if status == apptdomain.StatusConfirmed {
		u.notifyConfirmation(appt)
	}

	return appt, nil
}

// eventStart combines date and time in the calendar timezone
func (u *appointmentUsecase) eventStart(date time.Time, timeOfDay string) (time.Time, error) {
	loc, err := time.LoadLocation(googlecalendar.Timezone)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// notifyConfirmation attempts exactly one email; failures are logged only
func (u *appointmentUsecase) notifyConfirmation(appt *apptdomain.Appointment) {
	user := appt.User
	if user == nil {
		var err error
		user, err = u.userRepo.FindByID(appt.UserID)
		if err != nil || user == nil {
			return
		}
	}

	subject, body := mailer.AppointmentConfirmed(user.FirstName, appt.Subject, appt.Date.Format("02/01/2006"), appt.Time)
	if err := u.mail.Send(user.Email, subject, body); err != nil {
		log.Printf("[WARN] appointment notification failed: %v", err)
	}
}
