package renderer

import (
	"bytes"
	"image/png"
	"strconv"
	"strings"
	"testing"
	"time"

	"monderh-backend/internal/report/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func emptySnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		GeneratedAt:          time.Now(),
		ApplicationsByStatus: map[string]int64{},
		OffersByContractType: map[string]int64{},
		RecentApplications:   []domain.RecentApplication{},
		RecentAppointments:   []domain.RecentAppointment{},
	}
}

func sampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		GeneratedAt:         time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC),
		TotalUsers:          12,
		TotalApplications:   3,
		TotalAppointments:   2,
		ActiveSubscriptions: 40,
		TotalJobOffers:      2,
		ActiveJobOffers:     2,
		ApplicationsByStatus: map[string]int64{
			"pending":  2,
			"accepted": 1,
		},
		OffersByContractType: map[string]int64{
			"CDI": 1,
			"CDD": 1,
		},
		RecentApplications: []domain.RecentApplication{
			{ID: "a1", CandidateName: "Jean Dupont", Position: "Consultant RH", ServiceType: "conseil", Status: "pending", CreatedAt: time.Now()},
			{ID: "a2", CandidateName: "Marie Martin", Position: "Coach", ServiceType: "coaching", Status: "pending", CreatedAt: time.Now()},
			{ID: "a3", CandidateName: "Anonyme", Position: "Comptable", ServiceType: "interim", Status: "accepted", CreatedAt: time.Now()},
		},
		RecentAppointments: []domain.RecentAppointment{
			{ID: "r1", PersonName: "Jean Dupont", ServiceType: "coaching", Date: time.Now(), Time: "10:00", Status: "pending"},
			{ID: "r2", PersonName: "Marie Martin", ServiceType: "formation", Date: time.Now(), Time: "14:30", Status: "confirmed"},
		},
	}
}

func sampleListings() *domain.Listings {
	return &domain.Listings{Offers: []domain.OfferRow{
		{ID: "o1", Title: "Développeur Go", Company: "TechCorp", Location: "Paris", ContractType: "CDI", ExperienceLevel: "Senior", IsActive: true},
		{ID: "o2", Title: "Chargé de recrutement", Company: "MondeRH", Location: "Lyon", ContractType: "CDD", ExperienceLevel: "Junior", IsActive: true},
	}}
}

func TestByFormat(t *testing.T) {
	for _, format := range []string{"csv", "xlsx", "pdf", "png"} {
		r, err := ByFormat(format)
		require.NoError(t, err, format)
		require.NotNil(t, r, format)
	}

	_, err := ByFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	_, err = ByFormat("")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestAllRenderersHandleEmptyStore(t *testing.T) {
	snap := emptySnapshot()
	listings := &domain.Listings{Offers: []domain.OfferRow{}}

	for _, format := range []string{"csv", "xlsx", "pdf", "png"} {
		r, err := ByFormat(format)
		require.NoError(t, err)

		artifact, err := r.Render(snap, listings)
		require.NoError(t, err, "renderer %s must tolerate an empty store", format)
		assert.NotEmpty(t, artifact.Data, format)
		assert.NotEmpty(t, artifact.MimeType, format)
		assert.Contains(t, artifact.Filename, "rapport_monderh_", format)
	}
}

// Every renderer output must carry the same top-level counts.
func TestRenderersAgreeOnCounts(t *testing.T) {
	snap := sampleSnapshot()
	listings := sampleListings()

	csvArtifact, err := (&CSVRenderer{}).Render(snap, listings)
	require.NoError(t, err)
	csvText := string(csvArtifact.Data)
	for _, pair := range countRows(snap) {
		assert.Contains(t, csvText, pair[0]+","+pair[1])
	}

	xlsxArtifact, err := (&XLSXRenderer{}).Render(snap, listings)
	require.NoError(t, err)
	wb, err := excelize.OpenReader(bytes.NewReader(xlsxArtifact.Data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(sheetSummary)
	require.NoError(t, err)
	got := map[string]string{}
	for _, row := range rows[1:] {
		if len(row) >= 2 {
			got[row[0]] = row[1]
		}
	}
	assert.Equal(t, strconv.FormatInt(snap.TotalUsers, 10), got["Utilisateurs"])
	assert.Equal(t, strconv.FormatInt(snap.TotalApplications, 10), got["Candidatures"])
	assert.Equal(t, strconv.FormatInt(snap.TotalAppointments, 10), got["Rendez-vous"])
	assert.Equal(t, strconv.FormatInt(snap.TotalJobOffers, 10), got["Offres d'emploi"])
}

// A workbook built from 3 applications and 2 offers has the four expected
// sheets, and the applications sheet holds a header plus one row per record.
func TestXLSXWorkbookLayout(t *testing.T) {
	artifact, err := (&XLSXRenderer{}).Render(sampleSnapshot(), sampleListings())
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", artifact.MimeType)
	assert.True(t, strings.HasSuffix(artifact.Filename, ".xlsx"))

	wb, err := excelize.OpenReader(bytes.NewReader(artifact.Data))
	require.NoError(t, err)
	defer wb.Close()

	assert.ElementsMatch(t,
		[]string{sheetSummary, sheetApplications, sheetAppointments, sheetOffers},
		wb.GetSheetList())

	appRows, err := wb.GetRows(sheetApplications)
	require.NoError(t, err)
	require.Len(t, appRows, 4, "1 header row + 3 data rows")
	assert.Equal(t, []string{"Candidat", "Poste", "Service", "Statut", "Date"}, appRows[0])
	assert.Equal(t, "Jean Dupont", appRows[1][0])

	offerRows, err := wb.GetRows(sheetOffers)
	require.NoError(t, err)
	require.Len(t, offerRows, 3, "1 header row + 2 offers")
}

func TestCSVSectionedLayout(t *testing.T) {
	artifact, err := (&CSVRenderer{}).Render(sampleSnapshot(), sampleListings())
	require.NoError(t, err)
	assert.Equal(t, "text/csv", artifact.MimeType)

	text := string(artifact.Data)
	assert.Contains(t, text, "Rapport MondeRH")
	assert.Contains(t, text, "Candidatures récentes")
	assert.Contains(t, text, "Rendez-vous récents")
	assert.Contains(t, text, "Offres d'emploi")
	assert.Contains(t, text, "Jean Dupont,Consultant RH")
	assert.Contains(t, text, "\n\n", "sections are separated by blank rows")
}

func TestPDFOutput(t *testing.T) {
	artifact, err := (&PDFRenderer{}).Render(sampleSnapshot(), sampleListings())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", artifact.MimeType)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF")))
}

func TestPNGGridDimensions(t *testing.T) {
	artifact, err := (&ChartRenderer{}).Render(sampleSnapshot(), sampleListings())
	require.NoError(t, err)
	assert.Equal(t, "image/png", artifact.MimeType)

	img, err := png.Decode(bytes.NewReader(artifact.Data))
	require.NoError(t, err)
	assert.Equal(t, panelWidth*2, img.Bounds().Dx())
	assert.Equal(t, panelHeight*2, img.Bounds().Dy())
}
