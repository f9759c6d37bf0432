package repository

import googledomain "monderh-backend/internal/google/domain"

// CredentialRepository defines the interface for stored OAuth credentials
type CredentialRepository interface {
	// FindByUser returns the user's credential, or nil when not connected
	FindByUser(userID string) (*googledomain.Credential, error)

	// Save inserts or overwrites the user's credential in place
	Save(cred *googledomain.Credential) error

	// Delete removes the user's credential (explicit disconnect or dead token)
	Delete(userID string) error
}
