package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goxsec/internal/geom"
	"github.com/alexiusacademia/goxsec/internal/section"
	"gonum.org/v1/gonum/spatial/r3"
)

// Load reads a solid model, choosing the format by file extension:
// .stl for meshes, anything else as a JSON face model.
func Load(path string) (*section.Body, error) {
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		return LoadSTL(path)
	}
	return LoadFromFile(path)
}

// LoadFromFile loads a JSON face model
func LoadFromFile(path string) (*section.Body, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	if err := file.Validate(); err != nil {
		return nil, err
	}

	return file.Body(), nil
}

// Body builds the in-memory solid. The file must be valid.
func (f *File) Body() *section.Body {
	body := &section.Body{Name: f.Name}
	for i, ff := range f.Faces {
		face := &section.PlanarFace{Label: ff.Label}
		if face.Label == "" {
			face.Label = fmt.Sprintf("face-%d", i+1)
		}
		for _, ring := range ff.Rings {
			pts := make([]r3.Vec, 0, len(ring))
			for _, p := range openRing(ring) {
				pts = append(pts, p.Vec())
			}
			face.Rings = append(face.Rings, section.RingFromPoints(pts))
		}
		if ff.Normal != nil {
			face.N = r3.Unit(ff.Normal.Vec())
		} else {
			face.N = newellNormal(openRing(ff.Rings[0]))
		}
		body.FaceList = append(body.FaceList, face)
	}
	return body
}

// FromBody converts a solid back to its file form.
func FromBody(b *section.Body) *File {
	f := &File{Name: b.Name}
	for _, face := range b.FaceList {
		n := fromVec(face.N)
		ff := FaceFile{Label: face.Label, Normal: &n}
		for _, ring := range face.Rings {
			pts := make([]Point3, len(ring))
			for i, e := range ring {
				pts[i] = fromVec(e.Start())
			}
			ff.Rings = append(ff.Rings, pts)
		}
		f.Faces = append(f.Faces, ff)
	}
	return f
}

// SaveToFile writes b as an indented JSON face model.
func SaveToFile(b *section.Body, path string) error {
	data, err := json.MarshalIndent(FromBody(b), "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// newellNormal computes the unit normal of a planar polygon with Newell's
// method. A degenerate ring, one whose area vector is shorter than
// geom.Eps, yields the zero vector.
func newellNormal(ring []Point3) r3.Vec {
	var n r3.Vec
	for i := range ring {
		c := ring[i]
		d := ring[(i+1)%len(ring)]
		n.X += (c.Y - d.Y) * (c.Z + d.Z)
		n.Y += (c.Z - d.Z) * (c.X + d.X)
		n.Z += (c.X - d.X) * (c.Y + d.Y)
	}
	if r3.Norm(n) < geom.Eps {
		return r3.Vec{}
	}
	return r3.Unit(n)
}
