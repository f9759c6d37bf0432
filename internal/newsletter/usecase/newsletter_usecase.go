package usecase

import (
	"errors"
	"time"

	"monderh-backend/internal/newsletter/domain"
	"monderh-backend/internal/newsletter/repository"

	"github.com/google/uuid"
)

// SubscribeInput carries a subscription request
type SubscribeInput struct {
	Email     string
	FirstName string
	LastName  string
	Company   string
	Interests []string
}

// NewsletterUsecase defines the interface for newsletter use cases
type NewsletterUsecase interface {
	// Subscribe registers a subscriber. alreadySubscribed is true when the
	// email is already active, in which case nothing is changed.
	Subscribe(in SubscribeInput) (sub *domain.Newsletter, alreadySubscribed bool, err error)
	Unsubscribe(email string) error
	List(limit, offset int) ([]*domain.Newsletter, int64, error)
}

type newsletterUsecase struct {
	newsletterRepo repository.NewsletterRepository
}

// NewNewsletterUsecase creates a new NewsletterUsecase
func NewNewsletterUsecase(newsletterRepo repository.NewsletterRepository) NewsletterUsecase {
	return &newsletterUsecase{newsletterRepo: newsletterRepo}
}

func (u *newsletterUsecase) Subscribe(in SubscribeInput) (*domain.Newsletter, bool, error) {
	existing, err := u.newsletterRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, false, err
	}

	if existing != nil {
		if existing.IsActive {
			return existing, true, nil
		}
		// reactivate a previously unsubscribed address
		existing.FirstName = in.FirstName
		existing.LastName = in.LastName
		existing.Company = in.Company
		existing.Interests = in.Interests
		existing.IsActive = true
		existing.SubscribedAt = time.Now()
		if err := u.newsletterRepo.Update(existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}

	sub := &domain.Newsletter{
		ID:           uuid.New().String(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Company:      in.Company,
		Interests:    in.Interests,
		SubscribedAt: time.Now(),
		IsActive:     true,
	}
	if err := u.newsletterRepo.Create(sub); err != nil {
		return nil, false, err
	}
	return sub, false, nil
}

func (u *newsletterUsecase) Unsubscribe(email string) error {
	sub, err := u.newsletterRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if sub == nil {
		return errors.New("subscriber not found")
	}
	if !sub.IsActive {
		return nil
	}
	sub.IsActive = false
	return u.newsletterRepo.Update(sub)
}

func (u *newsletterUsecase) List(limit, offset int) ([]*domain.Newsletter, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return u.newsletterRepo.FindAll(limit, offset)
}
