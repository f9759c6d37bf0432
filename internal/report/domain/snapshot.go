package domain

import "time"

// RecentListSize bounds the recent-record slices carried in a Snapshot.
const RecentListSize = 5

// RecentApplication is a denormalized application row for reporting
type RecentApplication struct {
	ID            string    `json:"id"`
	CandidateName string    `json:"candidate_name"`
	Position      string    `json:"position"`
	ServiceType   string    `json:"service_type"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// RecentAppointment is a denormalized appointment row for reporting
type RecentAppointment struct {
	ID          string    `json:"id"`
	PersonName  string    `json:"person_name"`
	ServiceType string    `json:"service_type"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
}

// Snapshot is a point-in-time aggregate computed for an export request.
// It is rebuilt on every request and never persisted.
type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`

	TotalUsers           int64            `json:"total_users"`
	TotalApplications    int64            `json:"total_applications"`
	TotalAppointments    int64            `json:"total_appointments"`
	ActiveSubscriptions  int64            `json:"active_subscriptions"`
	TotalJobOffers       int64            `json:"total_job_offers"`
	ActiveJobOffers      int64            `json:"active_job_offers"`
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`
	OffersByContractType map[string]int64 `json:"offers_by_contract_type"`

	RecentApplications []RecentApplication `json:"recent_applications"`
	RecentAppointments []RecentAppointment `json:"recent_appointments"`
}

// OfferRow is a denormalized job offer row for export listings
type OfferRow struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	ContractType    string    `json:"contract_type"`
	ExperienceLevel string    `json:"experience_level"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// Listings carries the full offer catalogue alongside a Snapshot for the
// renderers that print more than the bounded recent lists.
type Listings struct {
	Offers []OfferRow `json:"offers"`
}
