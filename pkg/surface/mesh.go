package surface

import "github.com/Faultbox/surfmesh/pkg/math"

// Mesh is a triangle mesh sampled from a Surface.
//
// Vertices and UVs are parallel arrays laid out row by row:
// the grid point (x, y) lives at index x + y*(Resolution.U+1).
// Indices holds three vertex indices per triangle.
type Mesh struct {
	Vertices   []math.Vec3
	UVs        []math.Vec2
	Indices    []uint32
	Resolution Resolution
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}
