package diagram

import (
	"github.com/yofu/dxf"
)

// DXFLayer is the layer holding the section outline.
const DXFLayer = "SECTION"

// ExportDXF writes the projected loops as line entities in model units.
// The fit transform is not applied: CAD drawings keep world coordinates.
func ExportDXF(data SectionDiagramData, filename string) error {
	if err := ensureDir(filename); err != nil {
		return err
	}
	d := dxf.NewDrawing()
	if _, err := d.AddLayer(DXFLayer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return err
	}
	for _, loop := range data.Loops {
		for i := 1; i < len(loop); i++ {
			a, b := loop[i-1], loop[i]
			if a == b {
				continue
			}
			if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
				return err
			}
		}
	}
	return d.SaveAs(filename)
}
