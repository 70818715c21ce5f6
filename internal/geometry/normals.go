package geometry

import "github.com/Faultbox/surfmesh/pkg/math"

// ComputeNormals returns one smooth normal per vertex, averaging the
// area-weighted normals (b-a) x (c-a) of the triangles that reference
// it. Triangles with a non-finite corner are ignored. Vertices that end
// up with no usable contribution get the zero vector.
//
// Vertices are not welded by position, so the two sides of a seam keep
// independent normals.
func ComputeNormals(vertices []math.Vec3, indices []uint32) []math.Vec3 {
	normals := make([]math.Vec3, len(vertices))

	for t := 0; t+2 < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		a, b, c := vertices[i0], vertices[i1], vertices[i2]
		if !a.IsFinite() || !b.IsFinite() || !c.IsFinite() {
			continue
		}

		// Unnormalized cross product weights by twice the triangle area.
		n := b.Sub(a).Cross(c.Sub(a))
		if !n.IsFinite() {
			continue
		}
		normals[i0] = normals[i0].Add(n)
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
	}

	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}
