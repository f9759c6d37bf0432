package usecase

import (
	"testing"

	"monderh-backend/internal/newsletter/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryNewsletterRepo struct {
	subs map[string]*domain.Newsletter
}

func newMemoryNewsletterRepo() *memoryNewsletterRepo {
	return &memoryNewsletterRepo{subs: map[string]*domain.Newsletter{}}
}

func (m *memoryNewsletterRepo) Create(sub *domain.Newsletter) error {
	m.subs[sub.Email] = sub
	return nil
}

func (m *memoryNewsletterRepo) FindByEmail(email string) (*domain.Newsletter, error) {
	return m.subs[email], nil
}

func (m *memoryNewsletterRepo) FindAll(limit, offset int) ([]*domain.Newsletter, int64, error) {
	var out []*domain.Newsletter
	for _, s := range m.subs {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (m *memoryNewsletterRepo) CountActive() (int64, error) {
	var n int64
	for _, s := range m.subs {
		if s.IsActive {
			n++
		}
	}
	return n, nil
}

func (m *memoryNewsletterRepo) Update(sub *domain.Newsletter) error {
	m.subs[sub.Email] = sub
	return nil
}

func TestSubscribe(t *testing.T) {
	repo := newMemoryNewsletterRepo()
	uc := NewNewsletterUsecase(repo)

	sub, already, err := uc.Subscribe(SubscribeInput{
		Email:     "jean@example.fr",
		FirstName: "Jean",
		Interests: []string{"recrutement", "coaching"},
	})
	require.NoError(t, err)
	assert.False(t, already)
	assert.True(t, sub.IsActive)
	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.SubscribedAt.IsZero())
}

func TestSubscribeDuplicate(t *testing.T) {
	repo := newMemoryNewsletterRepo()
	uc := NewNewsletterUsecase(repo)

	_, _, err := uc.Subscribe(SubscribeInput{Email: "jean@example.fr"})
	require.NoError(t, err)

	sub, already, err := uc.Subscribe(SubscribeInput{Email: "jean@example.fr"})
	require.NoError(t, err)
	assert.True(t, already, "an active subscriber is reported, not duplicated")
	assert.NotNil(t, sub)

	count, err := repo.CountActive()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSubscribeReactivates(t *testing.T) {
	repo := newMemoryNewsletterRepo()
	uc := NewNewsletterUsecase(repo)

	_, _, err := uc.Subscribe(SubscribeInput{Email: "jean@example.fr"})
	require.NoError(t, err)
	require.NoError(t, uc.Unsubscribe("jean@example.fr"))

	sub, already, err := uc.Subscribe(SubscribeInput{Email: "jean@example.fr", Company: "TechCorp"})
	require.NoError(t, err)
	assert.False(t, already)
	assert.True(t, sub.IsActive)
	assert.Equal(t, "TechCorp", sub.Company)
}

func TestUnsubscribe(t *testing.T) {
	repo := newMemoryNewsletterRepo()
	uc := NewNewsletterUsecase(repo)

	_, _, err := uc.Subscribe(SubscribeInput{Email: "jean@example.fr"})
	require.NoError(t, err)

	require.NoError(t, uc.Unsubscribe("jean@example.fr"))
	count, err := repo.CountActive()
	require.NoError(t, err)
	assert.Zero(t, count)

	// unsubscribing twice is a no-op, not an error
	assert.NoError(t, uc.Unsubscribe("jean@example.fr"))
}

func TestUnsubscribeUnknown(t *testing.T) {
	uc := NewNewsletterUsecase(newMemoryNewsletterRepo())
	err := uc.Unsubscribe("absent@example.fr")
	assert.EqualError(t, err, "subscriber not found")
}
