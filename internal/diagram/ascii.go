package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/goxsec/internal/fit"
	"github.com/alexiusacademia/goxsec/internal/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

// SectionDiagramData holds what a renderer needs to draw a cross-section
type SectionDiagramData struct {
	Title string

	// Projected loops in model units, outer ring first
	Loops []geom.Loop2

	// Transform maps Loops into Canvas coordinates
	Transform fit.Transform
	Canvas    fit.Canvas
}

// screenLoops returns the loops in canvas coordinates with Y growing
// downward, whichever way the transform was solved.
func (d SectionDiagramData) screenLoops() []geom.Loop2 {
	loops := d.Transform.ApplyLoops(d.Loops)
	if d.Transform.FlipY() {
		return loops
	}
	return flip(loops, d.Canvas.Height)
}

// upLoops returns the loops in canvas coordinates with Y growing upward.
func (d SectionDiagramData) upLoops() []geom.Loop2 {
	loops := d.Transform.ApplyLoops(d.Loops)
	if !d.Transform.FlipY() {
		return loops
	}
	return flip(loops, d.Canvas.Height)
}

func flip(loops []geom.Loop2, height float64) []geom.Loop2 {
	for _, loop := range loops {
		for i := range loop {
			loop[i].Y = height - loop[i].Y
		}
	}
	return loops
}

// DrawASCIISection rasterizes the section outline onto a character grid of
// the given size. The canvas is stretched to the grid.
func DrawASCIISection(data SectionDiagramData, cols, rows int) string {
	var sb strings.Builder
	if cols < 2 || rows < 2 || data.Canvas.Validate() != nil {
		return ""
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	sx := float64(cols-1) / data.Canvas.Width
	sy := float64(rows-1) / data.Canvas.Height
	cell := func(p r2.Vec) (int, int) {
		return int(math.Round(p.X * sx)), int(math.Round(p.Y * sy))
	}
	set := func(c, r int, ch rune) {
		if r >= 0 && r < rows && c >= 0 && c < cols {
			grid[r][c] = ch
		}
	}

	for _, loop := range data.screenLoops() {
		for i := 1; i < len(loop); i++ {
			c0, r0 := cell(loop[i-1])
			c1, r1 := cell(loop[i])
			steps := max(abs(c1-c0), abs(r1-r0))
			for s := 0; s <= steps; s++ {
				t := 0.0
				if steps > 0 {
					t = float64(s) / float64(steps)
				}
				c := int(math.Round(float64(c0) + t*float64(c1-c0)))
				r := int(math.Round(float64(r0) + t*float64(r1-r0)))
				set(c, r, '█')
			}
		}
		for _, p := range loop {
			c, r := cell(p)
			set(c, r, '●')
		}
	}

	sb.WriteString("\n")
	if data.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", data.Title))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("─", len([]rune(data.Title)))))
	}
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for _, row := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│\n", string(row)))
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("  canvas %s, scale %.4g\n", data.Canvas, data.Transform.Scale()))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
