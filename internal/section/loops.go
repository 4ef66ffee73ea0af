package section

import (
	"fmt"

	"github.com/alexiusacademia/goxsec/internal/geom"
)

// ExtractLoops converts each boundary ring of f into a closed point loop:
// the start point of every edge in traversal order, then the first point
// again.
func ExtractLoops(f Face) ([]geom.Loop3, error) {
	rings := f.BoundaryLoops()
	loops := make([]geom.Loop3, 0, len(rings))
	for i, ring := range rings {
		if len(ring) == 0 {
			return nil, fmt.Errorf("boundary ring %d: %w", i, geom.ErrEmptyGeometry)
		}
		loop := make(geom.Loop3, 0, len(ring)+1)
		for _, e := range ring {
			loop = append(loop, e.Start())
		}
		loop = append(loop, loop[0])
		loops = append(loops, loop)
	}
	return loops, nil
}

// Topology describes a face by its loop count: a single ring is "open",
// a ring with holes is "closed".
func Topology(loops int) string {
	if loops == 1 {
		return "open"
	}
	return "closed"
}

// PluralSuffix returns "s" unless n is exactly one.
func PluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
