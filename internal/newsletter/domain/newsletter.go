package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringArray stores a list of strings as a JSON column
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported type for StringArray")
	}
}

// Newsletter represents a newsletter subscriber
type Newsletter struct {
	ID           string      `json:"id" gorm:"primaryKey"`
	Email        string      `json:"email" gorm:"uniqueIndex;not null"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Company      string      `json:"company"`
	Interests    StringArray `json:"interests" gorm:"type:text"`
	SubscribedAt time.Time   `json:"subscribed_at"`
	IsActive     bool        `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
