// Package diagram renders analyzed cross-sections: ASCII previews, plot
// images, SVG and DXF drawings.
package diagram

import (
	"os"
	"path/filepath"
	"strings"
)

// Export writes the diagram to filename, picking the renderer from the
// extension. Unknown extensions are saved as PNG.
func Export(data SectionDiagramData, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".svg":
		return ExportSVG(data, filename)
	case ".dxf":
		return ExportDXF(data, filename)
	case ".png", ".pdf", ".eps", ".jpg", ".jpeg", ".tif", ".tiff":
		return ExportSectionDiagram(data, filename)
	default:
		return ExportSectionDiagram(data, filename+".png")
	}
}

// ensureDir creates the parent directory of filename if needed.
func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
