package geom

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// ProjectPoint drops the coordinate named by axis:
// X keeps (Y, Z), Y keeps (X, Z), Z keeps (X, Y).
func ProjectPoint(p r3.Vec, axis ViewAxis) r2.Vec {
	switch axis {
	case AxisX:
		return r2.Vec{X: p.Y, Y: p.Z}
	case AxisY:
		return r2.Vec{X: p.X, Y: p.Z}
	default:
		return r2.Vec{X: p.X, Y: p.Y}
	}
}

// Project maps every loop to 2D. Loop count, vertex count and vertex order
// are preserved.
func Project(loops []Loop3, axis ViewAxis) []Loop2 {
	out := make([]Loop2, len(loops))
	for i, loop := range loops {
		pl := make(Loop2, len(loop))
		for j, p := range loop {
			pl[j] = ProjectPoint(p, axis)
		}
		out[i] = pl
	}
	return out
}
