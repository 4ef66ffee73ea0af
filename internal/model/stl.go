package model

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goxsec/internal/section"
	"github.com/hschendel/stl"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// planeTolerance is the largest vertex distance from a face plane,
	// relative to the mesh bounding box diagonal, still counted as on it.
	planeTolerance = 1e-5

	// normalTolerance bounds the cross product of two unit normals
	// treated as the same orientation.
	normalTolerance = 1e-3
)

// LoadSTL reads an ASCII or binary STL file and recovers its planar faces.
func LoadSTL(path string) (*section.Body, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, err
	}
	body, err := FromMesh(solid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return body, nil
}

type vertexKey = stl.Vec3

type halfEdge struct {
	from, to vertexKey
}

// facet is a group of coplanar triangles. The plane passes through anchor;
// its normal is the area-weighted sum of the member triangle normals.
type facet struct {
	anchor r3.Vec
	area   r3.Vec
	edges  []halfEdge
}

func (f *facet) normal() r3.Vec {
	return r3.Unit(f.area)
}

// accepts reports whether a triangle with unit normal n and vertices pts
// lies on the facet plane.
func (f *facet) accepts(n r3.Vec, pts [3]r3.Vec, tol float64) bool {
	fn := f.normal()
	if r3.Dot(n, fn) <= 0 || r3.Norm(r3.Cross(n, fn)) > normalTolerance {
		return false
	}
	for _, p := range pts {
		if math.Abs(r3.Dot(fn, r3.Sub(p, f.anchor))) > tol {
			return false
		}
	}
	return true
}

// FromMesh groups coplanar triangles into planar faces. Triangles join a
// face when their normals agree and their vertices lie within a distance
// of the face plane proportional to the mesh size, so float32 rounding on
// tilted planes does not split a face. Each face's rings are the closed
// chains of edges that are not shared with a neighbouring triangle of the
// same face; the ring with the largest extent comes first. Triangle
// normals are recomputed from the vertex winding.
func FromMesh(solid *stl.Solid) (*section.Body, error) {
	tol := planeTolerance * meshSize(solid)
	var facets []*facet
	for _, tri := range solid.Triangles {
		pts := [3]r3.Vec{vec(tri.Vertices[0]), vec(tri.Vertices[1]), vec(tri.Vertices[2])}
		area := r3.Cross(r3.Sub(pts[1], pts[0]), r3.Sub(pts[2], pts[0]))
		if r3.Norm(area) == 0 {
			continue
		}
		n := r3.Unit(area)
		var f *facet
		for _, g := range facets {
			if g.accepts(n, pts, tol) {
				f = g
				break
			}
		}
		if f == nil {
			f = &facet{anchor: pts[0]}
			facets = append(facets, f)
		}
		f.area = r3.Add(f.area, area)
		v := tri.Vertices
		f.edges = append(f.edges, halfEdge{v[0], v[1]}, halfEdge{v[1], v[2]}, halfEdge{v[2], v[0]})
	}
	if len(facets) == 0 {
		return nil, &ValidationError{"mesh has no non-degenerate triangles"}
	}

	body := &section.Body{Name: solid.Name}
	for i, f := range facets {
		rings := boundaryRings(f.edges)
		if len(rings) == 0 {
			section.Logger().Warn("skipping facet without boundary", "facet", i+1)
			continue
		}
		face := &section.PlanarFace{N: f.normal(), Label: fmt.Sprintf("facet-%d", i+1)}
		for _, ring := range rings {
			face.Rings = append(face.Rings, section.RingFromPoints(ring))
		}
		body.FaceList = append(body.FaceList, face)
	}
	section.Logger().Debug("recovered planar faces from mesh",
		"triangles", len(solid.Triangles),
		"faces", len(body.FaceList))
	return body, nil
}

// meshSize is the diagonal of the mesh bounding box, or 1 for a mesh
// without extent.
func meshSize(solid *stl.Solid) float64 {
	var pts []r3.Vec
	for _, tri := range solid.Triangles {
		for _, v := range tri.Vertices {
			pts = append(pts, vec(v))
		}
	}
	if len(pts) == 0 {
		return 1
	}
	if size := extent(pts); size > 0 {
		return size
	}
	return 1
}

// boundaryRings chains the half-edges whose reverse is absent into closed
// rings, largest extent first.
func boundaryRings(edges []halfEdge) [][]r3.Vec {
	present := make(map[halfEdge]bool, len(edges))
	for _, e := range edges {
		present[e] = true
	}
	next := make(map[vertexKey][]int)
	var boundary []halfEdge
	for _, e := range edges {
		if present[halfEdge{e.to, e.from}] {
			continue
		}
		next[e.from] = append(next[e.from], len(boundary))
		boundary = append(boundary, e)
	}

	used := make([]bool, len(boundary))
	var rings [][]r3.Vec
	for i := range boundary {
		if used[i] {
			continue
		}
		var ring []r3.Vec
		cur := i
		for cur >= 0 && !used[cur] {
			used[cur] = true
			e := boundary[cur]
			ring = append(ring, vec(e.from))
			cur = -1
			for _, k := range next[e.to] {
				if !used[k] {
					cur = k
					break
				}
			}
		}
		if len(ring) >= 3 {
			rings = append(rings, ring)
		}
	}

	// Outer ring first.
	best := 0
	for i := range rings {
		if extent(rings[i]) > extent(rings[best]) {
			best = i
		}
	}
	if best > 0 {
		rings[0], rings[best] = rings[best], rings[0]
	}
	return rings
}

func extent(ring []r3.Vec) float64 {
	lo, hi := ring[0], ring[0]
	for _, p := range ring {
		lo = r3.Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return r3.Norm(r3.Sub(hi, lo))
}

func vec(v stl.Vec3) r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
