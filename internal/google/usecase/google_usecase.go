package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	googledomain "monderh-backend/internal/google/domain"
	"monderh-backend/internal/google/repository"
	"monderh-backend/pkg/config"
	"monderh-backend/pkg/googlecalendar"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	// ErrIntegrationUnavailable is returned when a token exchange fails; the
	// stored credential is left untouched.
	ErrIntegrationUnavailable = errors.New("integration unavailable")

	// ErrCredentialDead marks an expired credential without a refresh token.
	// The caller decides whether to delete the record.
	ErrCredentialDead = errors.New("credential expired with no refresh token")
)

// Scopes are limited to files the app created plus calendar management
var oauthScopes = []string{
	"https://www.googleapis.com/auth/drive.file",
	"https://www.googleapis.com/auth/calendar",
}

// googleUsecase implements GoogleUsecase
type googleUsecase struct {
	credRepo repository.CredentialRepository
	drive    DriveClient
	calendar CalendarClient
	config   *config.Config
}

// NewGoogleUsecase creates a new instance of googleUsecase
func NewGoogleUsecase(credRepo repository.CredentialRepository, drive DriveClient, calendar CalendarClient, cfg *config.Config) GoogleUsecase {
	return &googleUsecase{
		credRepo: credRepo,
		drive:    drive,
		calendar: calendar,
		config:   cfg,
	}
}

func (u *googleUsecase) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     u.config.GoogleClientID,
		ClientSecret: u.config.GoogleClientSecret,
		RedirectURL:  u.config.GoogleRedirectURI,
		Scopes:       oauthScopes,
		Endpoint:     google.Endpoint,
	}
}

func (u *googleUsecase) AuthCodeURL(userID string) (string, error) {
	state, err := signState(u.config.JWTSecret, userID)
	if err != nil {
		return "", err
	}

	// Offline access so Google issues a refresh token on first consent
	url := u.oauthConfig().AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
	return url, nil
}

func (u *googleUsecase) HandleCallback(ctx context.Context, authUserID, state, code string) (string, error) {
	userID, err := verifyState(u.config.JWTSecret, state, authUserID)
	if err != nil {
		return "", err
	}

	cfg := u.oauthConfig()
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return "", ErrIntegrationUnavailable
	}

	cred, err := u.credRepo.FindByUser(userID)
	if err != nil {
		return "", err
	}
	if cred == nil {
		cred = &googledomain.Credential{UserID: userID}
	}

	cred.AccessToken = token.AccessToken
	// Google omits the refresh token on re-consent; keep the stored one
	if token.RefreshToken != "" {
		cred.RefreshToken = token.RefreshToken
	}
	cred.TokenEndpoint = google.Endpoint.TokenURL
	cred.ClientID = cfg.ClientID
	cred.ClientSecret = cfg.ClientSecret
	cred.Scopes = oauthScopes
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		cred.Expiry = &expiry
	}

	if err := u.credRepo.Save(cred); err != nil {
		return "", err
	}

	return userID, nil
}

func (u *googleUsecase) Status(userID string) (bool, error) {
	cred, err := u.credRepo.FindByUser(userID)
	if err != nil {
		return false, err
	}
	return cred != nil, nil
}

func (u *googleUsecase) Disconnect(userID string) error {
	return u.credRepo.Delete(userID)
}

func (u *googleUsecase) EnsureCredential(ctx context.Context, userID string) (*googledomain.Credential, error) {
	cred, err := u.credRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if cred == nil {
		// Not connected: no credential, no error
		return nil, nil
	}

	if !cred.Expired() {
		return cred, nil
	}

	if cred.RefreshToken == "" {
		return nil, ErrCredentialDead
	}

	// Exchange the refresh token at the stored token endpoint. Nothing is
	// persisted until the exchange succeeds.
	cfg := &oauth2.Config{
		ClientID:     cred.ClientID,
		ClientSecret: cred.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cred.TokenEndpoint,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	src := cfg.TokenSource(ctx, &oauth2.Token{
		RefreshToken: cred.RefreshToken,
		Expiry:       time.Now().Add(-time.Minute),
	})

	token, err := src.Token()
	if err != nil {
		log.Printf("[WARN] token refresh failed for user %s: %v", userID, err)
		return nil, ErrIntegrationUnavailable
	}

	cred.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		cred.RefreshToken = token.RefreshToken
	}
	if !token.Expiry.IsZero() {
		expiry := token.Expiry
		cred.Expiry = &expiry
	}

	if err := u.credRepo.Save(cred); err != nil {
		return nil, err
	}

	return cred, nil
}

func (u *googleUsecase) UploadCV(ctx context.Context, userID string, content []byte, filename, contentType string) *googledomain.SyncResult {
	cred, err := u.EnsureCredential(ctx, userID)
	if err != nil {
		return &googledomain.SyncResult{Failure: googledomain.FailureUnavailable, Err: err}
	}
	if cred == nil {
		return &googledomain.SyncResult{Failure: googledomain.FailureNotConnected}
	}

	remoteID, link, err := u.drive.Upload(ctx, cred.AccessToken, content, filename, contentType)
	if err != nil {
		log.Printf("[WARN] drive upload failed for user %s: %v", userID, err)
		return &googledomain.SyncResult{Failure: googledomain.FailureProvider, Err: err}
	}

	return &googledomain.SyncResult{RemoteID: remoteID, Link: link}
}

func (u *googleUsecase) CreateAppointmentEvent(ctx context.Context, userID string, in googlecalendar.EventInput) *googledomain.SyncResult {
	cred, err := u.EnsureCredential(ctx, userID)
	if err != nil {
		return &googledomain.SyncResult{Failure: googledomain.FailureUnavailable, Err: err}
	}
	if cred == nil {
		return &googledomain.SyncResult{Failure: googledomain.FailureNotConnected}
	}

	link, err := u.calendar.CreateEvent(ctx, cred.AccessToken, in)
	if err != nil {
		log.Printf("[WARN] calendar event creation failed for user %s: %v", userID, err)
		return &googledomain.SyncResult{Failure: googledomain.FailureProvider, Err: err}
	}

	return &googledomain.SyncResult{Link: link}
}
