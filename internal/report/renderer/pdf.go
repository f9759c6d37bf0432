package renderer

import (
	"bytes"

	"monderh-backend/internal/report/domain"

	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer writes a titled document with one table per section.
// Listings are truncated to the snapshot's bounded recent lists.
type PDFRenderer struct{}

func (r *PDFRenderer) Render(snap *domain.Snapshot, listings *domain.Listings) (*Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr("Rapport MondeRH"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Généré le "+snap.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string, header []string, widths []float64, rows [][]string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.CellFormat(0, 9, tr(title), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(44, 62, 80)
		pdf.SetTextColor(255, 255, 255)
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		fill := false
		pdf.SetFillColor(240, 240, 240)
		for _, row := range rows {
			for i, v := range row {
				pdf.CellFormat(widths[i], 6, tr(v), "1", 0, "L", fill, 0, "")
			}
			pdf.Ln(-1)
			fill = !fill
		}
		pdf.Ln(5)
	}

	var summary [][]string
	for _, c := range countRows(snap) {
		summary = append(summary, []string{c[0], c[1]})
	}
	section("Résumé", []string{"Indicateur", "Valeur"}, []float64{120, 40}, summary)

	var apps [][]string
	for _, a := range snap.RecentApplications {
		apps = append(apps, []string{
			a.CandidateName, a.Position, a.ServiceType, a.Status,
			a.CreatedAt.Format("02/01/2006"),
		})
	}
	section("Candidatures récentes",
		[]string{"Candidat", "Poste", "Service", "Statut", "Date"},
		[]float64{45, 50, 30, 30, 25}, apps)

	var appts [][]string
	for _, a := range snap.RecentAppointments {
		appts = append(appts, []string{
			a.PersonName, a.ServiceType, a.Date.Format("02/01/2006"), a.Time, a.Status,
		})
	}
	section("Rendez-vous récents",
		[]string{"Personne", "Service", "Date", "Heure", "Statut"},
		[]float64{50, 35, 30, 25, 30}, appts)

	offers := listings.Offers
	if len(offers) > domain.RecentListSize {
		offers = offers[:domain.RecentListSize]
	}
	var offerRows [][]string
	for _, o := range offers {
		offerRows = append(offerRows, []string{o.Title, o.Company, o.Location, o.ContractType})
	}
	section("Offres d'emploi",
		[]string{"Titre", "Entreprise", "Lieu", "Contrat"},
		[]float64{60, 50, 40, 25}, offerRows)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return &Artifact{
		Data:     buf.Bytes(),
		MimeType: "application/pdf",
		Filename: timestampedName("pdf"),
	}, nil
}
