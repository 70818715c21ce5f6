// Package math provides the float32 vector types shared by the surface
// sampler, the geometry helpers and the mesh writers.
package math

// Vec2 is a texture coordinate. Both components are in [0, 1] for
// generated meshes.
type Vec2 struct {
	X, Y float32
}
