package renderer

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"monderh-backend/internal/report/domain"
)

// ErrUnknownFormat is returned by ByFormat for unsupported format selectors
var ErrUnknownFormat = errors.New("unknown export format")

// Artifact is a rendered downloadable file
type Artifact struct {
	Data     []byte
	MimeType string
	Filename string
}

// Renderer turns a snapshot (plus listings) into a downloadable artifact.
// Renderers are pure: they never touch the data store.
type Renderer interface {
	Render(snap *domain.Snapshot, listings *domain.Listings) (*Artifact, error)
}

// ByFormat returns the renderer for a format selector
func ByFormat(format string) (Renderer, error) {
	switch format {
	case "csv":
		return &CSVRenderer{}, nil
	case "xlsx":
		return &XLSXRenderer{}, nil
	case "pdf":
		return &PDFRenderer{}, nil
	case "png":
		return &ChartRenderer{}, nil
	}
	return nil, ErrUnknownFormat
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func timestampedName(ext string) string {
	return fmt.Sprintf("rapport_monderh_%s.%s", time.Now().Format("2006-01-02_150405"), ext)
}

// countRows returns the top-level count section shared by every renderer
func countRows(snap *domain.Snapshot) [][2]string {
	return [][2]string{
		{"Utilisateurs", fmt.Sprintf("%d", snap.TotalUsers)},
		{"Candidatures", fmt.Sprintf("%d", snap.TotalApplications)},
		{"Rendez-vous", fmt.Sprintf("%d", snap.TotalAppointments)},
		{"Abonnés newsletter", fmt.Sprintf("%d", snap.ActiveSubscriptions)},
		{"Offres d'emploi", fmt.Sprintf("%d", snap.TotalJobOffers)},
		{"Offres actives", fmt.Sprintf("%d", snap.ActiveJobOffers)},
	}
}
