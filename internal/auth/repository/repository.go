package repository

import authdomain "monderh-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	FindAll() ([]*authdomain.User, error)
	Count() (int64, error)
	Update(user *authdomain.User) error
	Delete(id string) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error
}
