package usecase

import (
	"testing"
	"time"

	authdomain "monderh-backend/internal/auth/domain"
	authdto "monderh-backend/internal/auth/dto"
	"monderh-backend/internal/auth/repository"
	"monderh-backend/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUserRepo struct {
	users  map[string]*authdomain.User
	tokens map[string]*authdomain.RefreshToken
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{
		users:  map[string]*authdomain.User{},
		tokens: map[string]*authdomain.RefreshToken{},
	}
}

func (m *memoryUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	m.users[user.ID] = user
	return nil
}

func (m *memoryUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepo) FindByID(id string) (*authdomain.User, error) {
	return m.users[id], nil
}

func (m *memoryUserRepo) FindAll() ([]*authdomain.User, error) {
	var out []*authdomain.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *memoryUserRepo) Count() (int64, error) {
	return int64(len(m.users)), nil
}

func (m *memoryUserRepo) Update(user *authdomain.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memoryUserRepo) Delete(id string) error {
	delete(m.users, id)
	return nil
}

func (m *memoryUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error {
	m.tokens[token.Token] = token
	return nil
}

func (m *memoryUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return m.tokens[token], nil
}

func (m *memoryUserRepo) DeleteRefreshToken(token string) error {
	delete(m.tokens, token)
	return nil
}

func authTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func seedUser(t *testing.T, repo *memoryUserRepo, email, password string, userType authdomain.UserType) *authdomain.User {
	t.Helper()
	hashed, err := repository.HashPassword(password)
	require.NoError(t, err)
	user := &authdomain.User{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  hashed,
		FirstName: "Jean",
		LastName:  "Dupont",
		UserType:  userType,
		IsActive:  true,
	}
	repo.users[user.ID] = user
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newMemoryUserRepo()
	seedUser(t, repo, "jean@example.fr", "motdepasse", authdomain.UserTypeCandidate)
	uc := NewAuthUsecase(repo, authTestConfig())

	resp, err := uc.Login(&authdto.LoginRequest{Email: "jean@example.fr", Password: "motdepasse"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "jean@example.fr", resp.User.Email)
	assert.Len(t, repo.tokens, 1, "refresh token must be persisted")
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	seedUser(t, repo, "jean@example.fr", "motdepasse", authdomain.UserTypeCandidate)
	uc := NewAuthUsecase(repo, authTestConfig())

	_, err := uc.Login(&authdto.LoginRequest{Email: "jean@example.fr", Password: "mauvais"})
	assert.EqualError(t, err, "invalid email or password")
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := NewAuthUsecase(newMemoryUserRepo(), authTestConfig())
	_, err := uc.Login(&authdto.LoginRequest{Email: "absent@example.fr", Password: "motdepasse"})
	assert.EqualError(t, err, "invalid email or password")
}

func TestLoginDisabledAccount(t *testing.T) {
	repo := newMemoryUserRepo()
	user := seedUser(t, repo, "jean@example.fr", "motdepasse", authdomain.UserTypeCandidate)
	user.IsActive = false
	uc := NewAuthUsecase(repo, authTestConfig())

	_, err := uc.Login(&authdto.LoginRequest{Email: "jean@example.fr", Password: "motdepasse"})
	assert.EqualError(t, err, "account is disabled")
}

func TestRegisterCreatesCandidate(t *testing.T) {
	repo := newMemoryUserRepo()
	uc := NewAuthUsecase(repo, authTestConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:     "marie@example.fr",
		Password:  "motdepasse",
		FirstName: "Marie",
		LastName:  "Martin",
	})
	require.NoError(t, err)
	assert.Equal(t, authdomain.UserTypeCandidate, resp.User.UserType)
	assert.True(t, resp.User.IsActive)
	assert.NotEqual(t, "motdepasse", resp.User.Password, "password must be hashed")
}

func TestRegisterClientAccountType(t *testing.T) {
	uc := NewAuthUsecase(newMemoryUserRepo(), authTestConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:       "entreprise@example.fr",
		Password:    "motdepasse",
		FirstName:   "Paul",
		LastName:    "Durand",
		AccountType: "client",
		Company:     "TechCorp",
	})
	require.NoError(t, err)
	assert.Equal(t, authdomain.UserTypeClient, resp.User.UserType)
}

func TestRegisterNeverCreatesAdmin(t *testing.T) {
	uc := NewAuthUsecase(newMemoryUserRepo(), authTestConfig())

	resp, err := uc.Register(&authdto.RegisterRequest{
		Email:       "intrus@example.fr",
		Password:    "motdepasse",
		FirstName:   "X",
		LastName:    "Y",
		AccountType: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, authdomain.UserTypeCandidate, resp.User.UserType)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	seedUser(t, repo, "jean@example.fr", "motdepasse", authdomain.UserTypeCandidate)
	uc := NewAuthUsecase(repo, authTestConfig())

	_, err := uc.Register(&authdto.RegisterRequest{
		Email:     "jean@example.fr",
		Password:  "autremotdepasse",
		FirstName: "Jean",
		LastName:  "Dupont",
	})
	assert.EqualError(t, err, "email already registered")
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	repo := newMemoryUserRepo()
	seedUser(t, repo, "jean@example.fr", "motdepasse", authdomain.UserTypeCandidate)
	uc := NewAuthUsecase(repo, authTestConfig())

	login, err := uc.Login(&authdto.LoginRequest{Email: "jean@example.fr", Password: "motdepasse"})
	require.NoError(t, err)

	refreshed, err := uc.RefreshToken(login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefreshTokenRevoked(t *testing.T) {
	repo := newMemoryUserRepo()
	seedUser(t, repo, "jean@example.fr", "motdepasse", authdomain.UserTypeCandidate)
	uc := NewAuthUsecase(repo, authTestConfig())

	login, err := uc.Login(&authdto.LoginRequest{Email: "jean@example.fr", Password: "motdepasse"})
	require.NoError(t, err)

	require.NoError(t, uc.Logout(login.RefreshToken))

	_, err = uc.RefreshToken(login.RefreshToken)
	assert.EqualError(t, err, "refresh token expired")
}

func TestValidateToken(t *testing.T) {
	repo := newMemoryUserRepo()
	seeded := seedUser(t, repo, "jean@example.fr", "motdepasse", authdomain.UserTypeCandidate)
	uc := NewAuthUsecase(repo, authTestConfig())

	login, err := uc.Login(&authdto.LoginRequest{Email: "jean@example.fr", Password: "motdepasse"})
	require.NoError(t, err)

	user, err := uc.ValidateToken(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, user.ID)

	_, err = uc.ValidateToken("garbage")
	assert.EqualError(t, err, "invalid token")
}
