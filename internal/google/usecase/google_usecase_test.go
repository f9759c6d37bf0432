package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	googledomain "monderh-backend/internal/google/domain"
	"monderh-backend/pkg/config"
	"monderh-backend/pkg/googlecalendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCredRepo struct {
	cred      *googledomain.Credential
	findErr   error
	saveErr   error
	saveCalls int
}

func (m *mockCredRepo) FindByUser(userID string) (*googledomain.Credential, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.cred, nil
}

func (m *mockCredRepo) Save(cred *googledomain.Credential) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.cred = cred
	return nil
}

func (m *mockCredRepo) Delete(userID string) error {
	m.cred = nil
	return nil
}

type mockDrive struct {
	remoteID string
	link     string
	err      error
	calls    int
}

func (m *mockDrive) Upload(ctx context.Context, accessToken string, content []byte, filename, contentType string) (string, string, error) {
	m.calls++
	return m.remoteID, m.link, m.err
}

type mockCalendar struct {
	link  string
	err   error
	calls int
}

func (m *mockCalendar) CreateEvent(ctx context.Context, accessToken string, in googlecalendar.EventInput) (string, error) {
	m.calls++
	return m.link, m.err
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		GoogleClientID:     "client-id",
		GoogleClientSecret: "client-secret",
		GoogleRedirectURI:  "http://localhost:8080/api/google/callback",
	}
}

func newTestUsecase(repo *mockCredRepo, drive *mockDrive, cal *mockCalendar) GoogleUsecase {
	if drive == nil {
		drive = &mockDrive{}
	}
	if cal == nil {
		cal = &mockCalendar{}
	}
	return NewGoogleUsecase(repo, drive, cal, testConfig())
}

func expiredCredential(tokenURL string) *googledomain.Credential {
	past := time.Now().Add(-time.Hour)
	return &googledomain.Credential{
		ID:            "cred-1",
		UserID:        "user-1",
		AccessToken:   "stale-access",
		RefreshToken:  "refresh-1",
		TokenEndpoint: tokenURL,
		ClientID:      "client-id",
		ClientSecret:  "client-secret",
		Expiry:        &past,
	}
}

func TestEnsureCredentialNotConnected(t *testing.T) {
	repo := &mockCredRepo{}
	uc := newTestUsecase(repo, nil, nil)

	cred, err := uc.EnsureCredential(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestEnsureCredentialStillValid(t *testing.T) {
	future := time.Now().Add(time.Hour)
	repo := &mockCredRepo{cred: &googledomain.Credential{
		UserID:      "user-1",
		AccessToken: "valid-access",
		Expiry:      &future,
	}}
	uc := newTestUsecase(repo, nil, nil)

	cred, err := uc.EnsureCredential(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "valid-access", cred.AccessToken)
	assert.Equal(t, 0, repo.saveCalls, "a valid credential must not be rewritten")
}

func TestEnsureCredentialNoExpiryTreatedValid(t *testing.T) {
	repo := &mockCredRepo{cred: &googledomain.Credential{
		UserID:      "user-1",
		AccessToken: "valid-access",
	}}
	uc := newTestUsecase(repo, nil, nil)

	cred, err := uc.EnsureCredential(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, 0, repo.saveCalls)
}

func TestEnsureCredentialRefreshesExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "refresh-1", r.Form.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"fresh-access","refresh_token":"rotated-refresh","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	repo := &mockCredRepo{cred: expiredCredential(srv.URL)}
	uc := newTestUsecase(repo, nil, nil)

	cred, err := uc.EnsureCredential(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, "fresh-access", cred.AccessToken)
	assert.Equal(t, "rotated-refresh", cred.RefreshToken)
	require.NotNil(t, cred.Expiry)
	assert.True(t, cred.Expiry.After(time.Now()))
	assert.Equal(t, 1, repo.saveCalls, "refreshed credential must be persisted")
}

func TestEnsureCredentialKeepsRefreshTokenWhenOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"fresh-access","token_type":"Bearer","expires_in":3600}`))
	}))
	defer srv.Close()

	repo := &mockCredRepo{cred: expiredCredential(srv.URL)}
	uc := newTestUsecase(repo, nil, nil)

	cred, err := uc.EnsureCredential(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", cred.RefreshToken)
}

func TestEnsureCredentialExchangeFailureLeavesRecordUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	stored := expiredCredential(srv.URL)
	repo := &mockCredRepo{cred: stored}
	uc := newTestUsecase(repo, nil, nil)

	cred, err := uc.EnsureCredential(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrIntegrationUnavailable)
	assert.Nil(t, cred)
	assert.Equal(t, 0, repo.saveCalls)
	assert.Equal(t, "stale-access", stored.AccessToken)
	assert.Equal(t, "refresh-1", stored.RefreshToken)
}

func TestEnsureCredentialDeadWithoutRefreshToken(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	repo := &mockCredRepo{cred: &googledomain.Credential{
		UserID:      "user-1",
		AccessToken: "stale-access",
		Expiry:      &past,
	}}
	uc := newTestUsecase(repo, nil, nil)

	cred, err := uc.EnsureCredential(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrCredentialDead)
	assert.Nil(t, cred)
	assert.Equal(t, 0, repo.saveCalls)
}

func TestUploadCVNotConnected(t *testing.T) {
	repo := &mockCredRepo{}
	drive := &mockDrive{}
	uc := newTestUsecase(repo, drive, nil)

	result := uc.UploadCV(context.Background(), "user-1", []byte("pdf"), "cv.pdf", "application/pdf")
	assert.False(t, result.OK())
	assert.Equal(t, googledomain.FailureNotConnected, result.Failure)
	assert.Equal(t, 0, drive.calls, "no upload without a credential")
}

func TestUploadCVProviderError(t *testing.T) {
	future := time.Now().Add(time.Hour)
	repo := &mockCredRepo{cred: &googledomain.Credential{
		UserID:      "user-1",
		AccessToken: "valid-access",
		Expiry:      &future,
	}}
	drive := &mockDrive{err: errors.New("quota exceeded")}
	uc := newTestUsecase(repo, drive, nil)

	result := uc.UploadCV(context.Background(), "user-1", []byte("pdf"), "cv.pdf", "application/pdf")
	assert.False(t, result.OK())
	assert.Equal(t, googledomain.FailureProvider, result.Failure)
	assert.Error(t, result.Err)
}

func TestUploadCVSuccess(t *testing.T) {
	future := time.Now().Add(time.Hour)
	repo := &mockCredRepo{cred: &googledomain.Credential{
		UserID:      "user-1",
		AccessToken: "valid-access",
		Expiry:      &future,
	}}
	drive := &mockDrive{remoteID: "file-123", link: "https://drive.google.com/file/d/file-123"}
	uc := newTestUsecase(repo, drive, nil)

	result := uc.UploadCV(context.Background(), "user-1", []byte("pdf"), "cv.pdf", "application/pdf")
	require.True(t, result.OK())
	assert.Equal(t, "file-123", result.RemoteID)
	assert.Equal(t, "https://drive.google.com/file/d/file-123", result.Link)
}

func TestCreateAppointmentEventSuccess(t *testing.T) {
	future := time.Now().Add(time.Hour)
	repo := &mockCredRepo{cred: &googledomain.Credential{
		UserID:      "admin-1",
		AccessToken: "valid-access",
		Expiry:      &future,
	}}
	cal := &mockCalendar{link: "https://calendar.google.com/event?eid=abc"}
	uc := newTestUsecase(repo, nil, cal)

	result := uc.CreateAppointmentEvent(context.Background(), "admin-1", googlecalendar.EventInput{
		Summary: "Rendez-vous coaching",
		Start:   time.Now().Add(48 * time.Hour),
	})
	require.True(t, result.OK())
	assert.Equal(t, "https://calendar.google.com/event?eid=abc", result.Link)
	assert.Equal(t, 1, cal.calls)
}

func TestStateRoundTrip(t *testing.T) {
	state, err := signState("test-secret", "user-1")
	require.NoError(t, err)

	userID, err := verifyState("test-secret", state, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// anonymous callback: identity comes from the state itself
	userID, err = verifyState("test-secret", state, "")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestStateRejectsWrongSecret(t *testing.T) {
	state, err := signState("other-secret", "user-1")
	require.NoError(t, err)

	_, err = verifyState("test-secret", state, "user-1")
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestStateRejectsGarbage(t *testing.T) {
	_, err := verifyState("test-secret", "not-a-token", "")
	assert.ErrorIs(t, err, ErrStateInvalid)
}

func TestCallbackStateMismatchAbortsBeforeExchange(t *testing.T) {
	repo := &mockCredRepo{}
	uc := newTestUsecase(repo, nil, nil)

	state, err := signState("test-secret", "user-1")
	require.NoError(t, err)

	_, err = uc.HandleCallback(context.Background(), "user-2", state, "auth-code")
	assert.ErrorIs(t, err, ErrStateMismatch)
	assert.Equal(t, 0, repo.saveCalls, "no credential may be stored on a mismatched state")
}

func TestDisconnect(t *testing.T) {
	future := time.Now().Add(time.Hour)
	repo := &mockCredRepo{cred: &googledomain.Credential{UserID: "user-1", Expiry: &future}}
	uc := newTestUsecase(repo, nil, nil)

	require.NoError(t, uc.Disconnect("user-1"))

	connected, err := uc.Status("user-1")
	require.NoError(t, err)
	assert.False(t, connected)
}
