package usecase

import (
	"context"

	googledomain "monderh-backend/internal/google/domain"

	"monderh-backend/pkg/googlecalendar"
)

// DriveClient abstracts the Drive upload call so tests can substitute it
type DriveClient interface {
	Upload(ctx context.Context, accessToken string, content []byte, filename, contentType string) (remoteID, viewLink string, err error)
}

// CalendarClient abstracts calendar event creation
type CalendarClient interface {
	CreateEvent(ctx context.Context, accessToken string, in googlecalendar.EventInput) (link string, err error)
}

// GoogleUsecase drives the OAuth connect flow, the credential refresher and
// the two sync adapters
type GoogleUsecase interface {
	// AuthCodeURL builds the provider authorization URL. The state parameter
	// is a signed short-lived token embedding the user id and a nonce; no
	// server-side session state is kept.
	AuthCodeURL(userID string) (string, error)

	// HandleCallback verifies state signature, expiry and (when an
	// authenticated user is present) user identity before exchanging the
	// code, then stores the credential. Returns the owning user id.
	HandleCallback(ctx context.Context, authUserID, state, code string) (string, error)

	// Status reports whether the user currently holds a credential
	Status(userID string) (bool, error)

	// Disconnect deletes the stored credential
	Disconnect(userID string) error

	// EnsureCredential implements the refresher contract: (nil, nil) when not
	// connected, the stored credential when still valid, a refreshed-and-
	// persisted credential when expired with a refresh token. On exchange
	// failure the stored record is left untouched and ErrIntegrationUnavailable
	// is returned; an expired credential without a refresh token yields
	// ErrCredentialDead.
	EnsureCredential(ctx context.Context, userID string) (*googledomain.Credential, error)

	// UploadCV pushes a CV to Drive on the user's behalf. Never returns an
	// error: failures come back tagged in the SyncResult.
	UploadCV(ctx context.Context, userID string, content []byte, filename, contentType string) *googledomain.SyncResult

	// CreateAppointmentEvent creates the calendar event for an appointment.
	// Same failure semantics as UploadCV.
	CreateAppointmentEvent(ctx context.Context, userID string, in googlecalendar.EventInput) *googledomain.SyncResult
}
