package domain

import "time"

// UserType discriminates account roles
type UserType string

const (
	UserTypeCandidate UserType = "candidate"
	UserTypeClient    UserType = "client"
	UserTypeAdmin     UserType = "admin"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never return password in JSON
	FirstName string    `json:"first_name" gorm:"not null"`
	LastName  string    `json:"last_name" gorm:"not null"`
	UserType  UserType  `json:"user_type" gorm:"default:candidate"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.UserType == UserTypeAdmin
}

// DisplayName is the name shown in admin listings and report exports
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}
