package repository

import (
	"errors"
	"time"

	jobdomain "monderh-backend/internal/job/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormJobRepository implements JobRepository using GORM
type gormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM-based JobRepository
func NewGormJobRepository(db *gorm.DB) JobRepository {
	return &gormJobRepository{db: db}
}

func (r *gormJobRepository) Create(offer *jobdomain.JobOffer) error {
	if offer.ID == "" {
		offer.ID = uuid.New().String()
	}
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = time.Now()
	return r.db.Create(offer).Error
}

func (r *gormJobRepository) FindByID(id string) (*jobdomain.JobOffer, error) {
	var offer jobdomain.JobOffer
	err := r.db.Where("id = ?", id).First(&offer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &offer, nil
}

func (r *gormJobRepository) FindAll(filter OfferFilter, limit, offset int) ([]*jobdomain.JobOffer, int64, error) {
	var offers []*jobdomain.JobOffer
	var total int64

	query := r.db.Model(&jobdomain.JobOffer{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR company ILIKE ? OR location ILIKE ? OR description ILIKE ?",
			like, like, like, like,
		)
	}
	if filter.ContractType != "" {
		query = query.Where("contract_type = ?", filter.ContractType)
	}
	if filter.ExperienceLevel != "" {
		query = query.Where("experience_level = ?", filter.ExperienceLevel)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&offers).Error
	if err != nil {
		return nil, 0, err
	}

	return offers, total, nil
}

func (r *gormJobRepository) FindSimilar(offer *jobdomain.JobOffer, n int) ([]*jobdomain.JobOffer, error) {
	var offers []*jobdomain.JobOffer
	err := r.db.Where("id <> ? AND is_active = ?", offer.ID, true).
		Where("department = ? OR contract_type = ?", offer.Department, offer.ContractType).
		Limit(n).
		Find(&offers).Error
	return offers, err
}

func (r *gormJobRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&jobdomain.JobOffer{}).Count(&count).Error
	return count, err
}

func (r *gormJobRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&jobdomain.JobOffer{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *gormJobRepository) CountByContractType() (map[jobdomain.ContractType]int64, error) {
	type row struct {
		ContractType jobdomain.ContractType
		Count        int64
	}
	var rows []row
	err := r.db.Model(&jobdomain.JobOffer{}).
		Select("contract_type, count(*) as count").
		Group("contract_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[jobdomain.ContractType]int64, len(rows))
	for _, rw := range rows {
		counts[rw.ContractType] = rw.Count
	}
	return counts, nil
}

func (r *gormJobRepository) Update(offer *jobdomain.JobOffer) error {
	offer.UpdatedAt = time.Now()
	return r.db.Save(offer).Error
}

func (r *gormJobRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&jobdomain.JobOffer{}).Error
}

func (r *gormJobRepository) CreateApplication(app *jobdomain.JobApplication) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()
	return r.db.Create(app).Error
}

func (r *gormJobRepository) FindApplicationsByOffer(offerID string) ([]*jobdomain.JobApplication, error) {
	var apps []*jobdomain.JobApplication
	err := r.db.Preload("User").
		Where("job_offer_id = ?", offerID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}
