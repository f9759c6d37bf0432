package repository

import (
	"monderh-backend/internal/newsletter/domain"
)

// NewsletterRepository defines data access for newsletter subscribers
type NewsletterRepository interface {
	Create(sub *domain.Newsletter) error
	FindByEmail(email string) (*domain.Newsletter, error)
	FindAll(limit, offset int) ([]*domain.Newsletter, int64, error)
	CountActive() (int64, error)
	Update(sub *domain.Newsletter) error
}
