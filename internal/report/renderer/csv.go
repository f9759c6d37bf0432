package renderer

import (
	"bytes"
	"encoding/csv"

	"monderh-backend/internal/report/domain"
)

// CSVRenderer writes a sectioned, human-readable report. It is not a
// single flat table: each entity category gets a title row, a header row
// and its own records, separated by blank rows.
type CSVRenderer struct{}

func (r *CSVRenderer) Render(snap *domain.Snapshot, listings *domain.Listings) (*Artifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	write := func(record ...string) error {
		return w.Write(record)
	}

	rows := [][]string{
		{"Rapport MondeRH"},
		{"Généré le", snap.GeneratedAt.Format("02/01/2006 15:04")},
		{},
		{"Résumé"},
	}
	for _, c := range countRows(snap) {
		rows = append(rows, []string{c[0], c[1]})
	}

	rows = append(rows, []string{}, []string{"Candidatures récentes"},
		[]string{"Candidat", "Poste", "Service", "Statut", "Date"})
	for _, a := range snap.RecentApplications {
		rows = append(rows, []string{
			a.CandidateName, a.Position, a.ServiceType, a.Status,
			a.CreatedAt.Format("02/01/2006"),
		})
	}

	rows = append(rows, []string{}, []string{"Rendez-vous récents"},
		[]string{"Personne", "Service", "Date", "Heure", "Statut"})
	for _, a := range snap.RecentAppointments {
		rows = append(rows, []string{
			a.PersonName, a.ServiceType, a.Date.Format("02/01/2006"), a.Time, a.Status,
		})
	}

	rows = append(rows, []string{}, []string{"Offres d'emploi"},
		[]string{"Titre", "Entreprise", "Lieu", "Contrat", "Expérience", "Active"})
	for _, o := range listings.Offers {
		active := "non"
		if o.IsActive {
			active = "oui"
		}
		rows = append(rows, []string{
			o.Title, o.Company, o.Location, o.ContractType, o.ExperienceLevel, active,
		})
	}

	for _, row := range rows {
		if err := write(row...); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &Artifact{
		Data:     buf.Bytes(),
		MimeType: "text/csv",
		Filename: timestampedName("csv"),
	}, nil
}
