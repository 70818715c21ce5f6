// Package geometry derives secondary mesh data (bounds, normals) from
// the buffers produced by the surface generator.
package geometry

import "github.com/Faultbox/surfmesh/pkg/math"

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns Max - Min.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// ComputeBounds returns the bounds of all finite vertices. ok is false
// when there is no finite vertex.
func ComputeBounds(vertices []math.Vec3) (b Bounds, ok bool) {
	for _, p := range vertices {
		if !p.IsFinite() {
			continue
		}
		if !ok {
			b = Bounds{Min: p, Max: p}
			ok = true
			continue
		}
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b, ok
}

// CountNonFinite returns how many vertices have a NaN or infinite component.
func CountNonFinite(vertices []math.Vec3) int {
	n := 0
	for _, p := range vertices {
		if !p.IsFinite() {
			n++
		}
	}
	return n
}
