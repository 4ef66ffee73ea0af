package diagram

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// newSectionPlot builds a plot of the section in canvas coordinates with
// the axes pinned to the canvas, so the fit transform decides placement.
func newSectionPlot(data SectionDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = data.Title
	if p.Title.Text == "" {
		p.Title.Text = "Cross Section"
	}
	p.X.Label.Text = "x (px)"
	p.Y.Label.Text = "y (px)"
	p.X.Min, p.X.Max = 0, data.Canvas.Width
	p.Y.Min, p.Y.Max = 0, data.Canvas.Height

	// Canvas frame
	frame, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Canvas.Width, Y: 0},
		{X: data.Canvas.Width, Y: data.Canvas.Height},
		{X: 0, Y: data.Canvas.Height},
		{X: 0, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	frame.LineStyle.Width = vg.Points(0.5)
	frame.LineStyle.Color = color.Gray{Y: 160}
	frame.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(frame)

	for i, loop := range data.upLoops() {
		pts := make(plotter.XYs, len(loop))
		for j, v := range loop {
			pts[j] = plotter.XY{X: v.X, Y: v.Y}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = color.Black
		if i > 0 {
			// Hole rings
			line.LineStyle.Width = vg.Points(1.5)
			line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
		}
		p.Add(line)
	}

	return p, nil
}

// ExportSectionDiagram saves the section plot; the format follows the file
// extension (png, pdf, eps, jpg, tif, svg).
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p, err := newSectionPlot(data)
	if err != nil {
		return err
	}
	if err := ensureDir(filename); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, filename)
}
