package diagram

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportDirectionPlot writes the direction-search curve to a PNG file,
// with the maximum marked.
func ExportDirectionPlot(scores []float64, best int, filename string) error {
	p := plot.New()
	p.Title.Text = "Elongation Direction Search"
	p.X.Label.Text = "Candidate azimuth (deg)"
	p.Y.Label.Text = "Mean apparent-offset ratio"

	pts := make(plotter.XYs, len(scores))
	for i, v := range scores {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)

	peak, err := plotter.NewScatter(plotter.XYs{{X: float64(best), Y: scores[best]}})
	if err != nil {
		return err
	}
	peak.GlyphStyle.Radius = vg.Points(4)
	peak.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(peak)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// ExportRankPlot writes the log-log frequency-size scatter to a PNG file.
// Heaves must be in rank order; non-positive entries are skipped. When a
// fitted slope/intercept is supplied (hasFit), the regression line is
// drawn over the scatter.
func ExportRankPlot(heaves []float64, slope, intercept float64, hasFit bool, filename string) error {
	p := plot.New()
	p.Title.Text = "Fault Frequency-Size"
	p.X.Label.Text = "log10 heave (m)"
	p.Y.Label.Text = "log10 rank"

	var pts plotter.XYs
	for i, h := range heaves {
		if h <= 0 || math.IsNaN(h) {
			continue
		}
		pts = append(pts, plotter.XY{
			X: math.Log10(h),
			Y: math.Log10(float64(i + 1)),
		})
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(2.5)
	scatter.GlyphStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(scatter)

	if hasFit && len(pts) > 0 {
		minX, maxX := pts[0].X, pts[0].X
		for _, pt := range pts {
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
		}
		fit := plotter.XYs{
			{X: minX, Y: intercept + slope*minX},
			{X: maxX, Y: intercept + slope*maxX},
		}
		line, err := plotter.NewLine(fit)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
		p.Add(line)
	}

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}
