package renderer

import (
	"bytes"

	"monderh-backend/internal/report/domain"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary      = "Résumé"
	sheetApplications = "Candidatures"
	sheetAppointments = "Rendez-vous"
	sheetOffers       = "Offres d'emploi"

	maxColWidth = 50
)

// XLSXRenderer writes a workbook with one sheet per entity category
type XLSXRenderer struct{}

func (r *XLSXRenderer) Render(snap *domain.Snapshot, listings *domain.Listings) (*Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2C3E50"}},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return nil, err
	}

	summaryRows := [][]string{{"Indicateur", "Valeur"}}
	for _, c := range countRows(snap) {
		summaryRows = append(summaryRows, []string{c[0], c[1]})
	}
	for status, n := range snap.ApplicationsByStatus {
		summaryRows = append(summaryRows, []string{"Candidatures " + status, itoa(n)})
	}
	if err := writeSheet(f, sheetSummary, headerStyle, summaryRows); err != nil {
		return nil, err
	}

	appRows := [][]string{{"Candidat", "Poste", "Service", "Statut", "Date"}}
	for _, a := range snap.RecentApplications {
		appRows = append(appRows, []string{
			a.CandidateName, a.Position, a.ServiceType, a.Status,
			a.CreatedAt.Format("02/01/2006"),
		})
	}
	if err := addSheet(f, sheetApplications, headerStyle, appRows); err != nil {
		return nil, err
	}

	apptRows := [][]string{{"Personne", "Service", "Date", "Heure", "Statut"}}
	for _, a := range snap.RecentAppointments {
		apptRows = append(apptRows, []string{
			a.PersonName, a.ServiceType, a.Date.Format("02/01/2006"), a.Time, a.Status,
		})
	}
	if err := addSheet(f, sheetAppointments, headerStyle, apptRows); err != nil {
		return nil, err
	}

	offerRows := [][]string{{"Titre", "Entreprise", "Lieu", "Contrat", "Expérience", "Active"}}
	for _, o := range listings.Offers {
		active := "non"
		if o.IsActive {
			active = "oui"
		}
		offerRows = append(offerRows, []string{
			o.Title, o.Company, o.Location, o.ContractType, o.ExperienceLevel, active,
		})
	}
	if err := addSheet(f, sheetOffers, headerStyle, offerRows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return &Artifact{
		Data:     buf.Bytes(),
		MimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Filename: timestampedName("xlsx"),
	}, nil
}

func addSheet(f *excelize.File, name string, headerStyle int, rows [][]string) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeSheet(f, name, headerStyle, rows)
}

// writeSheet fills a sheet, styles its first row and sizes columns to
// content up to maxColWidth
func writeSheet(f *excelize.File, name string, headerStyle int, rows [][]string) error {
	widths := map[int]int{}

	for ri, row := range rows {
		for ci, v := range row {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(name, cell, v); err != nil {
				return err
			}
			if len(v) > widths[ci] {
				widths[ci] = len(v)
			}
		}
	}

	if len(rows) > 0 {
		first, err := excelize.CoordinatesToCellName(1, 1)
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(name, first, last, headerStyle); err != nil {
			return err
		}
	}

	for ci, w := range widths {
		width := float64(w + 4)
		if width > maxColWidth {
			width = maxColWidth
		}
		col, err := excelize.ColumnNumberToName(ci + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}
	return nil
}
