package repository

import appdomain "monderh-backend/internal/application/domain"

// ApplicationRepository defines the interface for candidacy data access
type ApplicationRepository interface {
	Create(app *appdomain.Application) error
	FindByID(id string) (*appdomain.Application, error)

	// FindAll returns applications newest first with optional status filter
	FindAll(status *appdomain.ApplicationStatus, limit, offset int) ([]*appdomain.Application, int64, error)

	// Recent returns the n most recent applications with User preloaded
	Recent(n int) ([]*appdomain.Application, error)

	Count() (int64, error)
	CountByStatus() (map[appdomain.ApplicationStatus]int64, error)

	Update(app *appdomain.Application) error
	Delete(id string) error
}
