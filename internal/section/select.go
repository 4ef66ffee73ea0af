package section

import (
	"fmt"

	"github.com/alexiusacademia/goxsec/internal/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Policy decides which face wins when several are parallel to the view.
type Policy int

const (
	// FirstMatch picks the first qualifying face in enumeration order.
	FirstMatch Policy = iota
	// Facing picks the first qualifying face whose normal points along the
	// view direction, falling back to FirstMatch.
	Facing
)

func (p Policy) String() string {
	switch p {
	case FirstMatch:
		return "first"
	case Facing:
		return "facing"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy parses "first" or "facing".
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "first":
		return FirstMatch, nil
	case "facing":
		return Facing, nil
	}
	return 0, fmt.Errorf("invalid selection policy %q (want first or facing)", s)
}

// CandidateFaces returns every face whose normal is parallel to viewDir,
// in enumeration order. A face without a usable normal never qualifies:
// the zero vector is parallel to everything.
func CandidateFaces(faces []Face, viewDir r3.Vec) []Face {
	var out []Face
	for _, f := range faces {
		if f == nil {
			continue
		}
		n := f.Normal()
		if r3.Norm(n) < geom.Eps {
			continue
		}
		if geom.IsParallel(n, viewDir) {
			out = append(out, f)
		}
	}
	return out
}

// SelectFace returns the first face whose normal is parallel to viewDir.
// The front and back caps of a prismatic member both qualify and project
// to the same contour.
func SelectFace(faces []Face, viewDir r3.Vec) (Face, error) {
	return SelectFaceWith(faces, viewDir, FirstMatch)
}

// SelectFaceWith is SelectFace with an explicit tie-break policy.
func SelectFaceWith(faces []Face, viewDir r3.Vec, policy Policy) (Face, error) {
	candidates := CandidateFaces(faces, viewDir)
	Logger().Debug("face selection",
		"faces", len(faces),
		"candidates", len(candidates),
		"policy", policy.String())
	if len(candidates) == 0 {
		return nil, ErrNotFound
	}
	if policy == Facing {
		for _, f := range candidates {
			if r3.Dot(f.Normal(), viewDir) > 0 {
				return f, nil
			}
		}
	}
	return candidates[0], nil
}
