package repository

import (
	"errors"
	"time"

	googledomain "monderh-backend/internal/google/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// credentialRepository implements CredentialRepository using GORM
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new GORM-based CredentialRepository
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &credentialRepository{db: db}
}

func (r *credentialRepository) FindByUser(userID string) (*googledomain.Credential, error) {
	var cred googledomain.Credential
	err := r.db.Where("user_id = ?", userID).First(&cred).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepository) Save(cred *googledomain.Credential) error {
	if cred.ID == "" {
		cred.ID = uuid.New().String()
		cred.CreatedAt = time.Now()
	}
	cred.UpdatedAt = time.Now()
	return r.db.Save(cred).Error
}

func (r *credentialRepository) Delete(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&googledomain.Credential{}).Error
}
