package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	authdomain "monderh-backend/internal/auth/domain"
)

// StringArray is a custom type to handle JSON array in GORM
type StringArray []string

// Value implements driver.Valuer
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = []string{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	if len(bytes) == 0 {
		*a = []string{}
		return nil
	}
	return json.Unmarshal(bytes, a)
}

// Credential is the stored Google OAuth token set for one user. A user holds
// at most one credential; the refresh token is never cleared except by an
// explicit disconnect.
type Credential struct {
	ID            string      `json:"id" gorm:"primaryKey"`
	UserID        string      `json:"user_id" gorm:"uniqueIndex;not null"`
	AccessToken   string      `json:"-" gorm:"type:text"`
	RefreshToken  string      `json:"-" gorm:"type:text"`
	TokenEndpoint string      `json:"token_endpoint"`
	ClientID      string      `json:"-"`
	ClientSecret  string      `json:"-"`
	Scopes        StringArray `json:"scopes" gorm:"type:text"`
	Expiry        *time.Time  `json:"expiry,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	User *authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Expired reports whether the access token is past its expiry. A credential
// without an expiry is treated as still valid.
func (c *Credential) Expired() bool {
	if c.Expiry == nil {
		return false
	}
	return c.Expiry.Before(time.Now())
}
