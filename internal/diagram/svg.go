package diagram

import (
	"io"
	"math"
	"os"

	svg "github.com/ajstarks/svgo"
)

// WriteSVG draws the section on a canvas-sized SVG document. Coordinates
// are canvas pixels, so the picture matches what a window of the same size
// would show.
func WriteSVG(w io.Writer, data SectionDiagramData) error {
	if err := data.Canvas.Validate(); err != nil {
		return err
	}
	width := int(math.Round(data.Canvas.Width))
	height := int(math.Round(data.Canvas.Height))

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white;stroke:#cccccc;stroke-width:1")
	if data.Title != "" {
		canvas.Text(width/2, 16, data.Title, "text-anchor:middle;font-size:12px;fill:#333")
	}
	for i, loop := range data.screenLoops() {
		xs := make([]int, len(loop))
		ys := make([]int, len(loop))
		for j, p := range loop {
			xs[j] = int(math.Round(p.X))
			ys[j] = int(math.Round(p.Y))
		}
		style := "fill:none;stroke:black;stroke-width:2"
		if i > 0 {
			style = "fill:none;stroke:#00008b;stroke-width:1.5"
		}
		canvas.Polyline(xs, ys, style)
	}
	canvas.End()
	return nil
}

// ExportSVG writes the SVG drawing to filename.
func ExportSVG(data SectionDiagramData, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteSVG(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
