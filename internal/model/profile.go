package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/alexiusacademia/goxsec/internal/geom"
	"github.com/alexiusacademia/goxsec/internal/section"
	"gonum.org/v1/gonum/spatial/r3"
)

// Profile is a member cross-section defined by vertices, the same layout
// as a section definition file:
//
//	{
//	  "name": "T-Beam Section",
//	  "vertices": [
//	    {"x": 0, "y": 0}, {"x": 300, "y": 0}, {"x": 300, "y": 400},
//	    {"x": 600, "y": 400}, {"x": 600, "y": 500}, {"x": 0, "y": 500}
//	  ]
//	}
//
// Unknown keys such as material or reinforcement data are ignored.
type Profile struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Outer boundary, in either winding
	Vertices []Point `json:"vertices"`

	// Optional openings, e.g. the void of a hollow section
	Holes [][]Point `json:"holes,omitempty"`
}

// Validate checks if the profile definition is valid
func (p *Profile) Validate() error {
	if len(p.Vertices) < 3 {
		return &ValidationError{"profile must have at least 3 vertices"}
	}
	for i, h := range p.Holes {
		if len(h) < 3 {
			return &ValidationError{fmt.Sprintf("hole %d must have at least 3 vertices", i+1)}
		}
	}
	return nil
}

// LoadProfile loads a profile definition from a JSON file
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// Extrude sweeps the profile along axis over the given length, producing a
// prism with a start cap at 0, an end cap at length and one side face per
// profile edge. Profile (x, y) maps onto the two coordinates kept when
// projecting along axis.
func Extrude(p *Profile, length float64, axis geom.ViewAxis) (*section.Body, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !(length > 0) || math.IsInf(length, 0) {
		return nil, &ValidationError{"extrusion length must be positive"}
	}
	if !axis.Valid() {
		return nil, &ValidationError{fmt.Sprintf("invalid extrusion axis %v", axis)}
	}

	// Outer ring counter-clockwise, holes clockwise, so the right-hand side
	// of every edge is outside the material.
	rings := [][]Point{oriented(p.Vertices, true)}
	for _, h := range p.Holes {
		rings = append(rings, oriented(h, false))
	}

	body := &section.Body{Name: p.Name}
	start := &section.PlanarFace{N: r3.Scale(-1, axis.Vector()), Label: "cap-start"}
	end := &section.PlanarFace{N: axis.Vector(), Label: "cap-end"}
	body.FaceList = append(body.FaceList, start, end)

	side := 0
	for _, ring := range rings {
		at0 := make([]r3.Vec, len(ring))
		atL := make([]r3.Vec, len(ring))
		for i, v := range ring {
			at0[i] = place(axis, v.X, v.Y, 0)
			atL[i] = place(axis, v.X, v.Y, length)
		}
		start.Rings = append(start.Rings, section.RingFromPoints(reversed(at0)))
		end.Rings = append(end.Rings, section.RingFromPoints(atL))

		for i := range ring {
			j := (i + 1) % len(ring)
			du, dv := ring[j].X-ring[i].X, ring[j].Y-ring[i].Y
			n := math.Hypot(du, dv)
			if n == 0 {
				continue
			}
			side++
			body.FaceList = append(body.FaceList, &section.PlanarFace{
				N:     place(axis, dv/n, -du/n, 0),
				Label: fmt.Sprintf("side-%d", side),
				Rings: [][]section.Edge{section.RingFromPoints([]r3.Vec{at0[i], at0[j], atL[j], atL[i]})},
			})
		}
	}
	return body, nil
}

// place embeds profile coordinates (u, v) and the position w along axis
// into model space.
func place(axis geom.ViewAxis, u, v, w float64) r3.Vec {
	switch axis {
	case geom.AxisX:
		return r3.Vec{X: w, Y: u, Z: v}
	case geom.AxisY:
		return r3.Vec{X: u, Y: w, Z: v}
	default:
		return r3.Vec{X: u, Y: v, Z: w}
	}
}

// oriented returns the ring without a closing duplicate, wound
// counter-clockwise when ccw is set and clockwise otherwise.
func oriented(ring []Point, ccw bool) []Point {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}
	var twice float64
	for i := range ring {
		j := (i + 1) % len(ring)
		twice += ring[i].X*ring[j].Y - ring[j].X*ring[i].Y
	}
	out := append([]Point(nil), ring...)
	if (twice > 0) != ccw {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func reversed(pts []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
