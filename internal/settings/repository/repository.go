package repository

import (
	"errors"

	"monderh-backend/internal/settings/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SettingsRepository defines data access for site settings
type SettingsRepository interface {
	// Get returns the single settings row, creating it with defaults when absent.
	Get() (*domain.SiteSettings, error)
	Update(settings *domain.SiteSettings) error
}

type gormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM-backed SettingsRepository
func NewGormSettingsRepository(db *gorm.DB) SettingsRepository {
	return &gormSettingsRepository{db: db}
}

func (r *gormSettingsRepository) Get() (*domain.SiteSettings, error) {
	var settings domain.SiteSettings
	err := r.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := domain.DefaultSettings()
	defaults.ID = uuid.New().String()
	if err := r.db.Create(defaults).Error; err != nil {
		return nil, err
	}
	return defaults, nil
}

func (r *gormSettingsRepository) Update(settings *domain.SiteSettings) error {
	return r.db.Save(settings).Error
}
