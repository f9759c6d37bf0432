package renderer

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"monderh-backend/internal/report/domain"

	"github.com/wcharczuk/go-chart/v2"
)

const (
	panelWidth  = 600
	panelHeight = 400
)

// ChartRenderer draws a 2x2 grid of charts into a single PNG:
// top-level counts, application-status distribution, offers by contract
// type and a placeholder monthly trend. The trend is illustrative only,
// it is not derived from stored data.
type ChartRenderer struct{}

func (r *ChartRenderer) Render(snap *domain.Snapshot, listings *domain.Listings) (*Artifact, error) {
	panels := make([]image.Image, 4)

	countsChart := chart.BarChart{
		Title:    "Vue d'ensemble",
		Width:    panelWidth,
		Height:   panelHeight,
		BarWidth: 80,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxCount(snap)},
		},
		Bars: []chart.Value{
			{Value: float64(snap.TotalUsers), Label: "Utilisateurs"},
			{Value: float64(snap.TotalApplications), Label: "Candidatures"},
			{Value: float64(snap.TotalAppointments), Label: "Rendez-vous"},
			{Value: float64(snap.TotalJobOffers), Label: "Offres"},
		},
	}
	img, err := renderPanel(countsChart.Render)
	if err != nil {
		return nil, err
	}
	panels[0] = img

	if snap.TotalApplications > 0 {
		var values []chart.Value
		for status, n := range snap.ApplicationsByStatus {
			if n > 0 {
				values = append(values, chart.Value{Value: float64(n), Label: status})
			}
		}
		statusChart := chart.PieChart{
			Title:  "Candidatures par statut",
			Width:  panelWidth,
			Height: panelHeight,
			Values: values,
		}
		if panels[1], err = renderPanel(statusChart.Render); err != nil {
			return nil, err
		}
	}

	if snap.TotalJobOffers > 0 {
		var bars []chart.Value
		for ct, n := range snap.OffersByContractType {
			bars = append(bars, chart.Value{Value: float64(n), Label: ct})
		}
		contractChart := chart.BarChart{
			Title:    "Offres par type de contrat",
			Width:    panelWidth,
			Height:   panelHeight,
			BarWidth: 60,
			YAxis: chart.YAxis{
				Range: &chart.ContinuousRange{Min: 0, Max: float64(snap.TotalJobOffers)},
			},
			Bars: bars,
		}
		if panels[2], err = renderPanel(contractChart.Render); err != nil {
			return nil, err
		}
	}

	trend := chart.Chart{
		Title:  "Tendance mensuelle (indicative)",
		Width:  panelWidth,
		Height: panelHeight,
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{1, 2, 3, 4, 5, 6},
				YValues: []float64{2, 5, 4, 8, 7, 11},
			},
		},
	}
	if panels[3], err = renderPanel(trend.Render); err != nil {
		return nil, err
	}

	grid := image.NewRGBA(image.Rect(0, 0, panelWidth*2, panelHeight*2))
	draw.Draw(grid, grid.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	offsets := []image.Point{
		{0, 0},
		{panelWidth, 0},
		{0, panelHeight},
		{panelWidth, panelHeight},
	}
	for i, panel := range panels {
		if panel == nil {
			continue
		}
		rect := image.Rectangle{
			Min: offsets[i],
			Max: offsets[i].Add(image.Point{panelWidth, panelHeight}),
		}
		draw.Draw(grid, rect, panel, image.Point{}, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, grid); err != nil {
		return nil, err
	}

	return &Artifact{
		Data:     buf.Bytes(),
		MimeType: "image/png",
		Filename: timestampedName("png"),
	}, nil
}

func renderPanel(render func(chart.RendererProvider, io.Writer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func maxCount(snap *domain.Snapshot) float64 {
	max := int64(1)
	for _, n := range []int64{
		snap.TotalUsers, snap.TotalApplications, snap.TotalAppointments, snap.TotalJobOffers,
	} {
		if n > max {
			max = n
		}
	}
	return float64(max)
}
