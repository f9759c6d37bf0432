package repository

import (
	"errors"
	"time"

	apptdomain "monderh-backend/internal/appointment/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormAppointmentRepository implements AppointmentRepository using GORM
type gormAppointmentRepository struct {
	db *gorm.DB
}

// NewGormAppointmentRepository creates a new GORM-based AppointmentRepository
func NewGormAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &gormAppointmentRepository{db: db}
}

func (r *gormAppointmentRepository) Create(appt *apptdomain.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = time.Now()
	return r.db.Create(appt).Error
}

func (r *gormAppointmentRepository) FindByID(id string) (*apptdomain.Appointment, error) {
	var appt apptdomain.Appointment
	err := r.db.Preload("User").Where("id = ?", id).First(&appt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appt, nil
}

func (r *gormAppointmentRepository) FindByUser(userID string) ([]*apptdomain.Appointment, error) {
	var appts []*apptdomain.Appointment
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC, time DESC").
		Find(&appts).Error
	return appts, err
}

func (r *gormAppointmentRepository) FindAll(limit, offset int) ([]*apptdomain.Appointment, int64, error) {
	var appts []*apptdomain.Appointment
	var total int64

	if err := r.db.Model(&apptdomain.Appointment{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&appts).Error
	if err != nil {
		return nil, 0, err
	}

	return appts, total, nil
}

func (r *gormAppointmentRepository) Recent(n int) ([]*apptdomain.Appointment, error) {
	var appts []*apptdomain.Appointment
	err := r.db.Preload("User").
		Order("created_at DESC").
		Limit(n).
		Find(&appts).Error
	return appts, err
}

func (r *gormAppointmentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&apptdomain.Appointment{}).Count(&count).Error
	return count, err
}

func (r *gormAppointmentRepository) Update(appt *apptdomain.Appointment) error {
	appt.UpdatedAt = time.Now()
	return r.db.Save(appt).Error
}
