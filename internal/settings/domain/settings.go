package domain

import "time"

// SiteSettings is a single-row table holding the public site configuration
type SiteSettings struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	SiteName     string    `json:"site_name"`
	Description  string    `json:"description"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	Address      string    `json:"address"`
	HeroTitle    string    `json:"hero_title"`
	HeroSubtitle string    `json:"hero_subtitle"`
	LinkedinURL  string    `json:"linkedin_url"`
	TwitterURL   string    `json:"twitter_url"`
	FacebookURL  string    `json:"facebook_url"`
	InstagramURL string    `json:"instagram_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultSettings returns the initial row created on first access
func DefaultSettings() *SiteSettings {
	return &SiteSettings{
		SiteName:     "MondeRH",
		Description:  "Cabinet de conseil en ressources humaines",
		HeroTitle:    "Votre partenaire RH de confiance",
		HeroSubtitle: "Recrutement, coaching, formation et conseil RH",
	}
}
