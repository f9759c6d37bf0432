package repository

import (
	"errors"
	"time"

	appdomain "monderh-backend/internal/application/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormApplicationRepository implements ApplicationRepository using GORM
type gormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository creates a new GORM-based ApplicationRepository
func NewGormApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) Create(app *appdomain.Application) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()
	return r.db.Create(app).Error
}

func (r *gormApplicationRepository) FindByID(id string) (*appdomain.Application, error) {
	var app appdomain.Application
	err := r.db.Preload("User").Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *gormApplicationRepository) FindAll(status *appdomain.ApplicationStatus, limit, offset int) ([]*appdomain.Application, int64, error) {
	var apps []*appdomain.Application
	var total int64

	query := r.db.Model(&appdomain.Application{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *gormApplicationRepository) Recent(n int) ([]*appdomain.Application, error) {
	var apps []*appdomain.Application
	err := r.db.Preload("User").
		Order("created_at DESC").
		Limit(n).
		Find(&apps).Error
	return apps, err
}

func (r *gormApplicationRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&appdomain.Application{}).Count(&count).Error
	return count, err
}

func (r *gormApplicationRepository) CountByStatus() (map[appdomain.ApplicationStatus]int64, error) {
	type row struct {
		Status appdomain.ApplicationStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&appdomain.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[appdomain.ApplicationStatus]int64, len(rows))
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

func (r *gormApplicationRepository) Update(app *appdomain.Application) error {
	app.UpdatedAt = time.Now()
	return r.db.Save(app).Error
}

func (r *gormApplicationRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&appdomain.Application{}).Error
}
