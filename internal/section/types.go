package section

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNotFound is returned when no planar face is parallel to the view
// direction.
var ErrNotFound = errors.New("no planar face parallel to the view direction")

// Edge is a bounded curve on a face boundary. Only its endpoints are used.
type Edge interface {
	Start() r3.Vec
	End() r3.Vec
}

// Face is a planar region of a solid's boundary.
type Face interface {
	// Normal returns the unit normal of the face plane.
	Normal() r3.Vec
	// BoundaryLoops returns the outer ring followed by any hole rings,
	// each as its edges in traversal order.
	BoundaryLoops() [][]Edge
}

// Solid exposes the planar faces of a solid model.
type Solid interface {
	Faces() []Face
}

// Segment is a straight edge from A to B.
type Segment struct {
	A r3.Vec
	B r3.Vec
}

func (s Segment) Start() r3.Vec { return s.A }
func (s Segment) End() r3.Vec   { return s.B }

// PlanarFace is a face with an explicit normal and boundary rings.
type PlanarFace struct {
	// N is the unit normal
	N     r3.Vec
	Rings [][]Edge
	// Label identifies the face in diagnostics, e.g. "cap-start" or "side-3".
	Label string
}

func (f *PlanarFace) Normal() r3.Vec          { return f.N }
func (f *PlanarFace) BoundaryLoops() [][]Edge { return f.Rings }

// Body is an in-memory solid made of planar faces.
type Body struct {
	Name     string
	FaceList []*PlanarFace
}

// Faces returns the faces in their stored order, skipping nil entries.
func (b *Body) Faces() []Face {
	faces := make([]Face, 0, len(b.FaceList))
	for _, f := range b.FaceList {
		if f != nil {
			faces = append(faces, f)
		}
	}
	return faces
}

// RingFromPoints builds the edges of a closed ring through pts. The ring
// closes back to pts[0]; a trailing copy of pts[0] is ignored.
func RingFromPoints(pts []r3.Vec) []Edge {
	n := len(pts)
	if n > 1 && pts[0] == pts[n-1] {
		n--
	}
	ring := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		ring = append(ring, Segment{A: pts[i], B: pts[(i+1)%n]})
	}
	return ring
}

// ValidationError represents invalid analysis input
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
