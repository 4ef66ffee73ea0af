// Package model loads solid models for cross-section analysis: JSON face
// models, member profiles extruded into prisms, and STL meshes.
package model

import (
	"fmt"

	"github.com/alexiusacademia/goxsec/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// File is the JSON representation of a solid made of planar faces.
//
// Example:
//
//	{
//	  "name": "Column C1",
//	  "faces": [
//	    {"label": "base", "normal": {"x": 0, "y": 0, "z": -1},
//	     "rings": [[{"x": 0, "y": 0, "z": 0}, {"x": 0, "y": 300, "z": 0}, ...]]}
//	  ]
//	}
type File struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Faces       []FaceFile `json:"faces"`
}

// FaceFile is one planar face. Rings holds the outer ring first, then any
// holes; consecutive points are joined by straight edges and each ring
// closes back to its first point.
type FaceFile struct {
	Label string `json:"label,omitempty"`

	// Normal is optional; when omitted it is computed from the outer ring.
	Normal *Point3 `json:"normal,omitempty"`

	Rings [][]Point3 `json:"rings"`
}

// Point3 represents a 3D coordinate
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec converts to a gonum vector.
func (p Point3) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

func fromVec(v r3.Vec) Point3 {
	return Point3{X: v.X, Y: v.Y, Z: v.Z}
}

// Point represents a 2D profile coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Validate checks that the model has faces and every ring has at least
// three points.
func (f *File) Validate() error {
	if len(f.Faces) == 0 {
		return &ValidationError{"model must have at least one face"}
	}
	for i, face := range f.Faces {
		if len(face.Rings) == 0 {
			return &ValidationError{fmt.Sprintf("face %d must have at least one ring", i+1)}
		}
		for j, ring := range face.Rings {
			if len(openRing(ring)) < 3 {
				return &ValidationError{fmt.Sprintf("face %d ring %d must have at least 3 points", i+1, j+1)}
			}
		}
		if face.Normal != nil && r3.Norm(face.Normal.Vec()) < geom.Eps {
			return &ValidationError{fmt.Sprintf("face %d has a zero normal", i+1)}
		}
		if face.Normal == nil && newellNormal(openRing(face.Rings[0])) == (r3.Vec{}) {
			return &ValidationError{fmt.Sprintf("face %d outer ring is degenerate and has no normal", i+1)}
		}
	}
	return nil
}

// openRing drops a trailing copy of the first point.
func openRing(ring []Point3) []Point3 {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}

// ValidationError represents a model validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
