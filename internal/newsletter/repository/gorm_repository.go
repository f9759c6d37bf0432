package repository

import (
	"errors"

	"monderh-backend/internal/newsletter/domain"

	"gorm.io/gorm"
)

type gormNewsletterRepository struct {
	db *gorm.DB
}

// NewGormNewsletterRepository creates a new GORM-backed NewsletterRepository
func NewGormNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &gormNewsletterRepository{db: db}
}

func (r *gormNewsletterRepository) Create(sub *domain.Newsletter) error {
	return r.db.Create(sub).Error
}

func (r *gormNewsletterRepository) FindByEmail(email string) (*domain.Newsletter, error) {
	var sub domain.Newsletter
	err := r.db.Where("email = ?", email).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *gormNewsletterRepository) FindAll(limit, offset int) ([]*domain.Newsletter, int64, error) {
	var subs []*domain.Newsletter
	var total int64

	if err := r.db.Model(&domain.Newsletter{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("subscribed_at DESC").Limit(limit).Offset(offset).Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *gormNewsletterRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Newsletter{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *gormNewsletterRepository) Update(sub *domain.Newsletter) error {
	return r.db.Save(sub).Error
}
