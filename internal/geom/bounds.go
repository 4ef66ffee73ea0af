package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Bounds3 returns the componentwise minimum and maximum over every vertex
// of every loop.
func Bounds3(loops []Loop3) (min, max r3.Vec, err error) {
	first := true
	for _, loop := range loops {
		for _, p := range loop {
			if first {
				min, max = p, p
				first = false
				continue
			}
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			min.Z = math.Min(min.Z, p.Z)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
			max.Z = math.Max(max.Z, p.Z)
		}
	}
	if first {
		return r3.Vec{}, r3.Vec{}, ErrEmptyGeometry
	}
	return min, max, nil
}

// Bounds2 returns the componentwise minimum and maximum over every vertex
// of every loop.
func Bounds2(loops []Loop2) (min, max r2.Vec, err error) {
	first := true
	for _, loop := range loops {
		for _, p := range loop {
			if first {
				min, max = p, p
				first = false
				continue
			}
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	if first {
		return r2.Vec{}, r2.Vec{}, ErrEmptyGeometry
	}
	return min, max, nil
}

// Center3 is the midpoint of a bounding box.
func Center3(min, max r3.Vec) r3.Vec {
	return r3.Scale(0.5, r3.Add(min, max))
}
