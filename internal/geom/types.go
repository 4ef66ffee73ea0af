// Package geom holds the small geometric building blocks of a cross-section
// analysis: closed point loops, view axes, projection and bounding boxes.
package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Eps is the tolerance used by the parallel test on the cross product length.
const Eps = 1.0e-9

// ErrEmptyGeometry is returned when a computation receives no points at all.
var ErrEmptyGeometry = errors.New("empty geometry")

// Loop3 is an ordered ring of 3D points. The last point repeats the first.
type Loop3 []r3.Vec

// Loop2 is an ordered ring of projected 2D points. The last point repeats the first.
type Loop2 []r2.Vec

// Closed reports whether the loop has at least one source vertex plus the
// repeated closing vertex.
func (l Loop3) Closed() bool {
	return len(l) >= 2 && l[0] == l[len(l)-1]
}

// Closed reports whether the loop has at least one source vertex plus the
// repeated closing vertex.
func (l Loop2) Closed() bool {
	return len(l) >= 2 && l[0] == l[len(l)-1]
}

// ViewAxis names the coordinate dropped during projection.
type ViewAxis int

const (
	AxisX ViewAxis = iota
	AxisY
	AxisZ
)

func (a ViewAxis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("ViewAxis(%d)", int(a))
}

// Vector returns the positive unit vector along the axis.
func (a ViewAxis) Vector() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisY:
		return r3.Vec{Y: 1}
	default:
		return r3.Vec{Z: 1}
	}
}

// Valid reports whether a is one of X, Y or Z.
func (a ViewAxis) Valid() bool {
	return a >= AxisX && a <= AxisZ
}

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (ViewAxis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid view axis %q (want x, y or z)", s)
}

// ParseDirection parses an axis name with an optional sign, e.g. "-y",
// into a unit direction vector.
func ParseDirection(s string) (r3.Vec, error) {
	s = strings.TrimSpace(s)
	sign := 1.0
	switch {
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	a, err := ParseAxis(s)
	if err != nil {
		return r3.Vec{}, err
	}
	return r3.Scale(sign, a.Vector()), nil
}

// AxisOf returns the axis of the dominant component of dir. Ties resolve
// toward Z, then Y.
func AxisOf(dir r3.Vec) ViewAxis {
	ax, ay, az := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)
	switch {
	case ax > ay && ax > az:
		return AxisX
	case ay > az:
		return AxisY
	default:
		return AxisZ
	}
}

// IsParallel reports whether p and q are parallel (or anti-parallel), that
// is, the length of their cross product is below Eps.
func IsParallel(p, q r3.Vec) bool {
	return r3.Norm(r3.Cross(p, q)) < Eps
}
