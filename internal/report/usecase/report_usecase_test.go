package usecase

import (
	"testing"
	"time"

	appdomain "monderh-backend/internal/application/domain"
	apptdomain "monderh-backend/internal/appointment/domain"
	authdomain "monderh-backend/internal/auth/domain"
	jobdomain "monderh-backend/internal/job/domain"
	jobrepo "monderh-backend/internal/job/repository"
	nldomain "monderh-backend/internal/newsletter/domain"
	"monderh-backend/internal/report/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The mocks below back BuildSnapshot with in-memory slices so the
// aggregation logic is exercised without a database.

type fakeUserRepo struct {
	count int64
}

func (f *fakeUserRepo) Create(user *authdomain.User) error                   { return nil }
func (f *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error)   { return nil, nil }
func (f *fakeUserRepo) FindByID(id string) (*authdomain.User, error)         { return nil, nil }
func (f *fakeUserRepo) FindAll() ([]*authdomain.User, error)                 { return nil, nil }
func (f *fakeUserRepo) Count() (int64, error)                                { return f.count, nil }
func (f *fakeUserRepo) Update(user *authdomain.User) error                   { return nil }
func (f *fakeUserRepo) Delete(id string) error                               { return nil }
func (f *fakeUserRepo) SaveRefreshToken(t *authdomain.RefreshToken) error    { return nil }
func (f *fakeUserRepo) FindRefreshToken(t string) (*authdomain.RefreshToken, error) {
	return nil, nil
}
func (f *fakeUserRepo) DeleteRefreshToken(t string) error { return nil }

type fakeAppRepo struct {
	apps []*appdomain.Application
}

func (f *fakeAppRepo) Create(app *appdomain.Application) error         { return nil }
func (f *fakeAppRepo) FindByID(id string) (*appdomain.Application, error) { return nil, nil }
func (f *fakeAppRepo) FindAll(status *appdomain.ApplicationStatus, limit, offset int) ([]*appdomain.Application, int64, error) {
	return f.apps, int64(len(f.apps)), nil
}
func (f *fakeAppRepo) Recent(n int) ([]*appdomain.Application, error) {
	if n > len(f.apps) {
		n = len(f.apps)
	}
	return f.apps[:n], nil
}
func (f *fakeAppRepo) Count() (int64, error) { return int64(len(f.apps)), nil }
func (f *fakeAppRepo) CountByStatus() (map[appdomain.ApplicationStatus]int64, error) {
	out := map[appdomain.ApplicationStatus]int64{}
	for _, a := range f.apps {
		out[a.Status]++
	}
	return out, nil
}
func (f *fakeAppRepo) Update(app *appdomain.Application) error { return nil }
func (f *fakeAppRepo) Delete(id string) error                  { return nil }

type fakeApptRepo struct {
	appts []*apptdomain.Appointment
}

func (f *fakeApptRepo) Create(appt *apptdomain.Appointment) error { return nil }
func (f *fakeApptRepo) FindByID(id string) (*apptdomain.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) FindByUser(userID string) ([]*apptdomain.Appointment, error) {
	return nil, nil
}
func (f *fakeApptRepo) FindAll(limit, offset int) ([]*apptdomain.Appointment, int64, error) {
	return f.appts, int64(len(f.appts)), nil
}
func (f *fakeApptRepo) Recent(n int) ([]*apptdomain.Appointment, error) {
	if n > len(f.appts) {
		n = len(f.appts)
	}
	return f.appts[:n], nil
}
func (f *fakeApptRepo) Count() (int64, error) { return int64(len(f.appts)), nil }
func (f *fakeApptRepo) Update(appt *apptdomain.Appointment) error { return nil }

type fakeNewsletterRepo struct {
	active int64
}

func (f *fakeNewsletterRepo) Create(sub *nldomain.Newsletter) error { return nil }
func (f *fakeNewsletterRepo) FindByEmail(email string) (*nldomain.Newsletter, error) {
	return nil, nil
}
func (f *fakeNewsletterRepo) FindAll(limit, offset int) ([]*nldomain.Newsletter, int64, error) {
	return nil, 0, nil
}
func (f *fakeNewsletterRepo) CountActive() (int64, error)           { return f.active, nil }
func (f *fakeNewsletterRepo) Update(sub *nldomain.Newsletter) error { return nil }

type fakeJobRepo struct {
	offers []*jobdomain.JobOffer
}

func (f *fakeJobRepo) Create(offer *jobdomain.JobOffer) error          { return nil }
func (f *fakeJobRepo) FindByID(id string) (*jobdomain.JobOffer, error) { return nil, nil }
func (f *fakeJobRepo) FindAll(filter jobrepo.OfferFilter, limit, offset int) ([]*jobdomain.JobOffer, int64, error) {
	return f.offers, int64(len(f.offers)), nil
}
func (f *fakeJobRepo) FindSimilar(offer *jobdomain.JobOffer, n int) ([]*jobdomain.JobOffer, error) {
	return nil, nil
}
func (f *fakeJobRepo) Count() (int64, error) { return int64(len(f.offers)), nil }
func (f *fakeJobRepo) CountActive() (int64, error) {
	var n int64
	for _, o := range f.offers {
		if o.IsActive {
			n++
		}
	}
	return n, nil
}
func (f *fakeJobRepo) CountByContractType() (map[jobdomain.ContractType]int64, error) {
	out := map[jobdomain.ContractType]int64{}
	for _, o := range f.offers {
		out[o.ContractType]++
	}
	return out, nil
}
func (f *fakeJobRepo) Update(offer *jobdomain.JobOffer) error { return nil }
func (f *fakeJobRepo) Delete(id string) error                 { return nil }
func (f *fakeJobRepo) CreateApplication(app *jobdomain.JobApplication) error {
	return nil
}
func (f *fakeJobRepo) FindApplicationsByOffer(offerID string) ([]*jobdomain.JobApplication, error) {
	return nil, nil
}

func TestBuildSnapshotEmptyStore(t *testing.T) {
	uc := NewReportUsecase(&fakeUserRepo{}, &fakeAppRepo{}, &fakeApptRepo{}, &fakeNewsletterRepo{}, &fakeJobRepo{})

	snap, err := uc.BuildSnapshot()
	require.NoError(t, err)

	assert.Zero(t, snap.TotalUsers)
	assert.Zero(t, snap.TotalApplications)
	assert.Zero(t, snap.TotalAppointments)
	assert.Zero(t, snap.ActiveSubscriptions)
	assert.Zero(t, snap.TotalJobOffers)
	assert.Zero(t, snap.ActiveJobOffers)
	assert.Empty(t, snap.RecentApplications)
	assert.Empty(t, snap.RecentAppointments)
	assert.Empty(t, snap.ApplicationsByStatus)
	assert.Empty(t, snap.OffersByContractType)
}

func TestBuildSnapshotCountsAndRecents(t *testing.T) {
	userID := "user-1"
	apps := []*appdomain.Application{
		{ID: "a1", Position: "Consultant", Status: appdomain.StatusPending,
			UserID: &userID, User: &authdomain.User{FirstName: "Jean", LastName: "Dupont"}},
		{ID: "a2", Position: "Comptable", Status: appdomain.StatusAccepted},
	}
	appts := []*apptdomain.Appointment{
		{ID: "r1", UserID: userID, ServiceType: appdomain.ServiceCoaching,
			Date: time.Now(), Time: "10:00", Status: apptdomain.StatusPending,
			User: &authdomain.User{FirstName: "Jean", LastName: "Dupont"}},
	}
	offers := []*jobdomain.JobOffer{
		{ID: "o1", ContractType: jobdomain.ContractCDI, IsActive: true},
		{ID: "o2", ContractType: jobdomain.ContractCDD, IsActive: false},
	}

	uc := NewReportUsecase(
		&fakeUserRepo{count: 4},
		&fakeAppRepo{apps: apps},
		&fakeApptRepo{appts: appts},
		&fakeNewsletterRepo{active: 7},
		&fakeJobRepo{offers: offers},
	)

	snap, err := uc.BuildSnapshot()
	require.NoError(t, err)

	assert.Equal(t, int64(4), snap.TotalUsers)
	assert.Equal(t, int64(2), snap.TotalApplications)
	assert.Equal(t, int64(1), snap.TotalAppointments)
	assert.Equal(t, int64(7), snap.ActiveSubscriptions)
	assert.Equal(t, int64(2), snap.TotalJobOffers)
	assert.Equal(t, int64(1), snap.ActiveJobOffers)
	assert.Equal(t, int64(1), snap.ApplicationsByStatus["pending"])
	assert.Equal(t, int64(1), snap.ApplicationsByStatus["accepted"])
	assert.Equal(t, int64(1), snap.OffersByContractType["CDI"])

	require.Len(t, snap.RecentApplications, 2)
	assert.Equal(t, "Jean Dupont", snap.RecentApplications[0].CandidateName)
	assert.Equal(t, "Anonyme", snap.RecentApplications[1].CandidateName)

	require.Len(t, snap.RecentAppointments, 1)
	assert.Equal(t, "Jean Dupont", snap.RecentAppointments[0].PersonName)
}

func TestRecentListsBounded(t *testing.T) {
	var apps []*appdomain.Application
	for i := 0; i < domain.RecentListSize+3; i++ {
		apps = append(apps, &appdomain.Application{ID: "a", Status: appdomain.StatusPending})
	}

	uc := NewReportUsecase(&fakeUserRepo{}, &fakeAppRepo{apps: apps}, &fakeApptRepo{}, &fakeNewsletterRepo{}, &fakeJobRepo{})

	snap, err := uc.BuildSnapshot()
	require.NoError(t, err)
	assert.Len(t, snap.RecentApplications, domain.RecentListSize)
}

func TestListings(t *testing.T) {
	offers := []*jobdomain.JobOffer{
		{ID: "o1", Title: "Développeur Go", Company: "MondeRH", ContractType: jobdomain.ContractCDI, IsActive: true},
	}
	uc := NewReportUsecase(&fakeUserRepo{}, &fakeAppRepo{}, &fakeApptRepo{}, &fakeNewsletterRepo{}, &fakeJobRepo{offers: offers})

	listings, err := uc.Listings()
	require.NoError(t, err)
	require.Len(t, listings.Offers, 1)
	assert.Equal(t, "Développeur Go", listings.Offers[0].Title)
	assert.Equal(t, "CDI", listings.Offers[0].ContractType)
}
